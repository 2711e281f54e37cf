package physics

import (
	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/vmath"
)

// Paddle is the player-controlled deflector, a fixed-size box whose center is
// clamped into the lower band of the board
type Paddle struct {
	centerX, centerY float64
}

// NewPaddle creates a paddle at its start position, flush with the left wall
func NewPaddle() *Paddle {
	p := &Paddle{}
	p.moveTo(constants.PaddleInitialX, constants.PaddleInitialYFrac*constants.BoardHeight)
	return p
}

// UpdatePosition moves the paddle center toward the pointer, keeping the paddle
// fully on the board horizontally and between 70% and 90% of the height
func (p *Paddle) UpdatePosition(pointerX, pointerY float64) {
	p.moveTo(pointerX, pointerY)
}

func (p *Paddle) moveTo(x, y float64) {
	p.centerX = vmath.Clamp(x, constants.PaddleHalfWidth, constants.BoardWidth-constants.PaddleHalfWidth)
	p.centerY = vmath.Clamp(y,
		constants.PaddleMinYFrac*constants.BoardHeight,
		constants.PaddleMaxYFrac*constants.BoardHeight)
}

// Center returns the clamped paddle center
func (p *Paddle) Center() (x, y float64) {
	return p.centerX, p.centerY
}

// Bounds returns the paddle box for collision queries and drawing
func (p *Paddle) Bounds() vmath.Rect {
	return vmath.RectFromCenter(p.centerX, p.centerY, constants.PaddleHalfWidth, constants.PaddleHalfHeight)
}
