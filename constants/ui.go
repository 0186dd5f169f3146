package constants

// HUD Layout (world units)
const (
	HUDMargin = 8

	// AmmoGaugeWidthFraction is the gauge width as a share of the field width
	AmmoGaugeWidthFraction = 0.3
	AmmoGaugeHeight        = 20
	AmmoGaugeY             = 40

	TimerX = 300
)

// Banner text
const (
	WinTitle    = "Most Wondrous!"
	WinMessage  = "Well done explorer!"
	LoseTitle   = "Blazes!"
	LoseMessage = "Get my repair kit and try again!"
)
