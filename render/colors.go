package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Scene colors
var (
	RgbBackground = tcell.NewRGBColor(12, 42, 74)
	RgbProjectile = tcell.NewRGBColor(255, 220, 40)
	RgbScore      = tcell.NewRGBColor(255, 230, 80)
	RgbText       = tcell.NewRGBColor(240, 240, 240)
	RgbTimer      = tcell.NewRGBColor(200, 220, 255)

	// Ammo gauge track and fills; powered-up fill is a gradient between the two powered stops
	RgbAmmoGauge    = tcell.NewRGBColor(40, 40, 40)
	RgbAmmoNormal   = tcell.NewRGBColor(230, 230, 230)
	RgbAmmoPowered  = tcell.NewRGBColor(255, 170, 40)
	RgbAmmoPoweredB = tcell.NewRGBColor(255, 90, 200)

	RgbDebugBox   = tcell.NewRGBColor(255, 60, 60)
	RgbDebugLives = tcell.NewRGBColor(255, 255, 255)

	RgbBannerWin  = tcell.NewRGBColor(120, 255, 140)
	RgbBannerLose = tcell.NewRGBColor(255, 110, 90)
)

// ToColorful converts a tcell color to a colorful color
func ToColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FromColorful converts a colorful color to a tcell RGB color
func FromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ParseHex parses "#rrggbb" into a tcell color
func ParseHex(s string) (tcell.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return FromColorful(c), nil
}

// Blend mixes a toward b in Lab space; t is clamped to [0,1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	t = math.Max(0, math.Min(1, t))
	return FromColorful(ToColorful(a).BlendLab(ToColorful(b), t))
}

// ShiftHue rotates the hue of c by deg degrees keeping saturation and value
func ShiftHue(c tcell.Color, deg float64) tcell.Color {
	h, s, v := ToColorful(c).Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return FromColorful(colorful.Hsv(h, s, v))
}

// Gradient returns the color at position t of a two-stop HCL gradient
func Gradient(from, to tcell.Color, t float64) tcell.Color {
	t = math.Max(0, math.Min(1, t))
	return FromColorful(ToColorful(from).BlendHcl(ToColorful(to), t))
}
