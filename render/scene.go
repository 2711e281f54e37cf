package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/vmath"
)

// Board-space palette for pixel presenters
var (
	ColorBackground = colorful.MustParseHex("#1a1b26")
	ColorBall       = colorful.MustParseHex("#ffffff")
	ColorPaddle     = colorful.MustParseHex("#87cefa")
	ColorFlash      = colorful.MustParseHex("#ffffc8")
)

// ShapeKind selects the primitive a presenter draws
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is one board-space primitive, in draw order
// Circles use the center and half-width of Bounds
type Shape struct {
	Kind   ShapeKind
	Bounds vmath.Rect
	Color  colorful.Color
	Label  rune // 0 for none
}

// Scene is a presenter-neutral description of one frame
type Scene struct {
	Shapes []Shape
	Status []string
}

// BuildScene lays out targets, flashes, paddle and ball in board coordinates
func BuildScene(snap engine.Snapshot, flashes []Flash) Scene {
	shapes := make([]Shape, 0, len(snap.Targets)+len(flashes)+2)
	for _, t := range snap.Targets {
		shapes = append(shapes, Shape{
			Kind:   ShapeRect,
			Bounds: t.Bounds,
			Color:  SkinColor(t.Skin),
			Label:  SkinLabel(t.Skin),
		})
	}
	for _, f := range flashes {
		shapes = append(shapes, Shape{
			Kind:   ShapeRect,
			Bounds: f.Bounds,
			Color:  ColorFlash.BlendLab(Fade(SkinColor(f.Skin), f.Fade), f.Fade).Clamped(),
		})
	}
	shapes = append(shapes,
		Shape{Kind: ShapeRect, Bounds: snap.Paddle, Color: ColorPaddle},
		Shape{
			Kind:   ShapeCircle,
			Bounds: vmath.RectFromCenter(snap.BallX, snap.BallY, snap.BallRadius, snap.BallRadius),
			Color:  ColorBall,
		},
	)

	var status []string
	if text := snap.Status.Text(); text != "" {
		status = strings.Split(text, "\n")
	}
	return Scene{Shapes: shapes, Status: status}
}
