package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/physics"
	"github.com/lixenwraith/zutopia/vmath"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	*FlashTracker

	screen tcell.Screen
	width  int
	height int
	view   Viewport
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, clock engine.TimeProvider) *TerminalRenderer {
	w, h := screen.Size()
	r := &TerminalRenderer{
		FlashTracker: NewFlashTracker(clock),
		screen:       screen,
	}
	r.UpdateDimensions(w, h)
	return r
}

// UpdateDimensions re-fits the board after a resize
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
	r.view = FitViewport(width, height)
}

// Viewport returns the current board mapping for input translation
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawBorder(defaultStyle)

	for _, t := range snap.Targets {
		r.drawTarget(t, defaultStyle)
	}
	r.drawFlashes(defaultStyle)

	r.fillRect(snap.Paddle, constants.GlyphPaddle, defaultStyle.Foreground(RgbPaddle))

	ballStyle := defaultStyle.Foreground(RgbBall)
	ball := vmath.RectFromCenter(snap.BallX, snap.BallY, snap.BallRadius, snap.BallRadius)
	r.fillRect(ball, constants.GlyphBall, ballStyle)

	r.drawStatusBar(snap, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(style tcell.Style) {
	v := r.view
	borderStyle := style.Foreground(RgbBorder)
	left, right := v.OriginX-1, v.OriginX+v.Cols
	top, bottom := v.OriginY-1, v.OriginY+v.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, constants.GlyphBorderH, nil, borderStyle)
		r.screen.SetContent(x, bottom, constants.GlyphBorderH, nil, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, constants.GlyphBorderV, nil, borderStyle)
		r.screen.SetContent(right, y, constants.GlyphBorderV, nil, borderStyle)
	}
	r.screen.SetContent(left, top, constants.GlyphCornerTL, nil, borderStyle)
	r.screen.SetContent(right, top, constants.GlyphCornerTR, nil, borderStyle)
	r.screen.SetContent(left, bottom, constants.GlyphCornerBL, nil, borderStyle)
	r.screen.SetContent(right, bottom, constants.GlyphCornerBR, nil, borderStyle)

	title := " " + constants.GameTitle + " "
	r.drawCentered(title, top, left, right+1, style.Foreground(RgbStatusTitle))
}

func (r *TerminalRenderer) drawTarget(t physics.Target, style tcell.Style) {
	c := ToTcell(SkinColor(t.Skin))
	r.fillRect(t.Bounds, constants.GlyphTarget, style.Foreground(c))

	cx, cy := r.view.BoardToCell(t.Bounds.Center())
	r.screen.SetContent(cx, cy, SkinLabel(t.Skin), nil, style.Foreground(tcell.ColorBlack).Background(c))
}

// drawFlashes draws live flashes fading toward the background
func (r *TerminalRenderer) drawFlashes(style tcell.Style) {
	for _, f := range r.Live() {
		c := ToTcell(Fade(SkinColor(f.Skin), f.Fade))
		r.fillRect(f.Bounds, constants.GlyphFlash, style.Foreground(RgbRemovalFlash).Background(c))
	}
}

// fillRect sets every cell whose center lies in box
// An axis thinner than a cell still covers the cell under the box midpoint
func (r *TerminalRenderer) fillRect(box vmath.Rect, ch rune, style tcell.Style) {
	v := r.view
	x0, x1 := cellSpan(box.MinX, box.MaxX, v.ScaleX, v.Cols)
	y0, y1 := cellSpan(box.MinY, box.MaxY, v.ScaleY, v.Rows)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r.screen.SetContent(v.OriginX+cx, v.OriginY+cy, ch, nil, style)
		}
	}
}

// cellSpan returns the first and last cell along one axis whose centers lie
// in [lo, hi], relative to the viewport origin
func cellSpan(lo, hi, scale float64, n int) (first, last int) {
	first = max(int(math.Ceil(lo/scale-0.5)), 0)
	last = min(int(math.Floor(hi/scale-0.5)), n-1)
	if first > last {
		mid := min(max(int(math.Floor((lo+hi)/2/scale)), 0), n-1)
		return mid, mid
	}
	return first, last
}

// drawStatusBar draws the status lines centered below the board
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, style tcell.Style) {
	statusY := r.view.OriginY + r.view.Rows + 1
	statusStyle := style.Foreground(RgbStatusBar)

	lines := strings.Split(snap.Status.Text(), "\n")
	for i, line := range lines {
		if i >= constants.StatusBarHeight {
			break
		}
		r.drawCentered(line, statusY+i, 0, r.width, statusStyle)
	}
}

// drawCentered writes text centered in columns [from, to) of row y, clipped
func (r *TerminalRenderer) drawCentered(text string, y, from, to int, style tcell.Style) {
	if y < 0 || y >= r.height || text == "" {
		return
	}
	span := to - from
	text = runewidth.Truncate(text, span, "")
	x := from + (span-runewidth.StringWidth(text))/2

	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
