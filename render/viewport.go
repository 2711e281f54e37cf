package render

import (
	"math"

	"github.com/lixenwraith/zutopia/constants"
)

// Viewport maps the board onto a block of terminal cells
// The block sits inside a one-cell border with the status bar below it
type Viewport struct {
	OriginX, OriginY int // screen cell of board (0, 0)
	Cols, Rows       int

	// Board units per cell
	ScaleX, ScaleY float64
}

// FitViewport sizes the largest board block that keeps the board aspect ratio
// on a screen of w x h cells
func FitViewport(w, h int) Viewport {
	availW := max(w-2, 1)
	availH := max(h-2-constants.StatusBarHeight, 1)

	// Board width over height measured in cells
	ratio := float64(constants.BoardWidth) / float64(constants.BoardHeight) * constants.CellAspect

	rows := availH
	cols := int(math.Round(float64(rows) * ratio))
	if cols > availW {
		cols = availW
		rows = max(int(math.Round(float64(cols)/ratio)), 1)
	}
	cols = max(cols, 1)

	return Viewport{
		OriginX: 1 + (availW-cols)/2,
		OriginY: 1,
		Cols:    cols,
		Rows:    rows,
		ScaleX:  float64(constants.BoardWidth) / float64(cols),
		ScaleY:  float64(constants.BoardHeight) / float64(rows),
	}
}

// Contains reports whether the screen cell lies on the board block
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.OriginX && cx < v.OriginX+v.Cols && cy >= v.OriginY && cy < v.OriginY+v.Rows
}

// CellToBoard returns the board point at the center of a screen cell
// Cells outside the block map outside the board; the paddle clamps them
func (v Viewport) CellToBoard(cx, cy int) (x, y float64) {
	x = (float64(cx-v.OriginX) + 0.5) * v.ScaleX
	y = (float64(cy-v.OriginY) + 0.5) * v.ScaleY
	return x, y
}

// BoardToCell returns the screen cell covering a board point
// Points on the far edges map to the last column and row
func (v Viewport) BoardToCell(x, y float64) (cx, cy int) {
	col := min(max(int(math.Floor(x/v.ScaleX)), 0), v.Cols-1)
	row := min(max(int(math.Floor(y/v.ScaleY)), 0), v.Rows-1)
	return v.OriginX + col, v.OriginY + row
}
