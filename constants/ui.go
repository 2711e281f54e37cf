package constants

import "time"

// Terminal glyphs
const (
	GlyphBall     = '●'
	GlyphPaddle   = '▀'
	GlyphTarget   = '█'
	GlyphFlash    = '░'
	GlyphBorderH  = '─'
	GlyphBorderV  = '│'
	GlyphCornerTL = '┌'
	GlyphCornerTR = '┐'
	GlyphCornerBL = '└'
	GlyphCornerBR = '┘'
)

// CellAspect is the height/width ratio of a terminal cell
const CellAspect = 2.0

// RemovalFlashDuration is how long a destroyed target stays highlighted
const RemovalFlashDuration = 150 * time.Millisecond

// StatusBarHeight is the number of rows reserved below the board
const StatusBarHeight = 2
