package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/zutopia/physics"
)

// RGB color definitions shared by the terminal renderer
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder       = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbBall         = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaddle       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusTitle  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbRemovalFlash = tcell.NewRGBColor(255, 255, 200) // Bright yellow-white flash
)

// Skin hues in degrees, fixed saturation and value
var skinHues = map[physics.Skin]float64{
	physics.SkinHorse: 28,  // chestnut
	physics.SkinDuck:  52,  // yellow
	physics.SkinGoat:  190, // pale teal
}

// SkinColor returns the base color of a skin, gray for unknown skins
func SkinColor(s physics.Skin) colorful.Color {
	h, ok := skinHues[s]
	if !ok {
		return colorful.Hsv(0, 0, 0.6)
	}
	return colorful.Hsv(h, 0.65, 0.9)
}

// SkinLabel returns the letter drawn in the middle of a target
func SkinLabel(s physics.Skin) rune {
	switch s {
	case physics.SkinHorse:
		return 'H'
	case physics.SkinDuck:
		return 'D'
	case physics.SkinGoat:
		return 'G'
	default:
		return '?'
	}
}

// ToTcell converts a colorful color to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ToRGBA converts a colorful color to an opaque image color
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Fade blends c toward the background by t in [0, 1]
func Fade(c colorful.Color, t float64) colorful.Color {
	bg := colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}
	return c.BlendLab(bg, t).Clamped()
}
