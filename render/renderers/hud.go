package renderers

import (
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/render"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUDRenderer draws the score, ammo gauge, match timer and the game-over banner
type HUDRenderer struct {
	printer *message.Printer
}

// NewHUDRenderer creates a new HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{
		printer: message.NewPrinter(language.English),
	}
}

// Render draws the overlay
func (r *HUDRenderer) Render(world *engine.World, s render.Surface, dt time.Duration) error {
	state := world.State
	small := render.Font{Size: render.FontSmall}

	s.DrawText(r.printer.Sprintf("Score: %d", state.Score), constants.HUDMargin, constants.HUDMargin,
		render.Font{Size: render.FontMedium}, render.RgbScore)
	s.DrawText(r.printer.Sprintf("Timer: %.1f", state.Elapsed.Seconds()), constants.TimerX, constants.HUDMargin,
		small, render.RgbTimer)

	r.drawAmmo(world, s)

	if state.GameOver {
		r.drawBanner(world, s)
	}
	return nil
}

// drawAmmo draws the gauge track and a fill proportional to ammo
// While powered up the fill color runs through a gradient as the power-up drains
func (r *HUDRenderer) drawAmmo(world *engine.World, s render.Surface) {
	state := world.State
	track := render.Rect{
		X: constants.HUDMargin,
		Y: constants.AmmoGaugeY,
		W: state.Width * constants.AmmoGaugeWidthFraction,
		H: constants.AmmoGaugeHeight,
	}
	s.FillRect(track, render.RgbAmmoGauge)

	if state.MaxAmmo <= 0 || state.Ammo <= 0 {
		return
	}
	fill := track
	fill.W = track.W * state.Ammo / state.MaxAmmo

	color := render.RgbAmmoNormal
	if p := state.Player; p.PoweredUp && state.PowerUpDuration > 0 {
		left := float64(p.PowerUpRemaining(world.Now())) / float64(state.PowerUpDuration)
		color = render.Gradient(render.RgbAmmoPoweredB, render.RgbAmmoPowered, left)
	}
	s.FillRect(fill, color)
}

func (r *HUDRenderer) drawBanner(world *engine.World, s render.Surface) {
	state := world.State
	title, msg, color := constants.LoseTitle, constants.LoseMessage, render.RgbBannerLose
	if state.Won() {
		title, msg, color = constants.WinTitle, constants.WinMessage, render.RgbBannerWin
	}

	cx, cy := state.Width/2, state.Height/2
	s.DrawText(title, cx, cy-40, render.Font{Size: render.FontLarge, Align: render.AlignCenter}, color)
	s.DrawText(msg, cx, cy+20, render.Font{Size: render.FontSmall, Align: render.AlignCenter}, render.RgbText)
}
