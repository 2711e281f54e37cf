package engine

import (
	"github.com/lixenwraith/zutopia/physics"
	"github.com/lixenwraith/zutopia/vmath"
)

// Snapshot is a value copy of everything a renderer draws
type Snapshot struct {
	State      GameState
	Status     Status
	Generation int
	Frame      int64

	BallX, BallY float64
	BallRadius   float64
	Paddle       vmath.Rect
	Targets      []physics.Target // ID order

	MissCount        int
	MissLimit        int
	TargetsRemaining int
	SpeedMult        float64
}

// Snapshot copies the current board
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:            g.state,
		Status:           g.Status(),
		Generation:       g.generation,
		Frame:            g.frame,
		BallX:            g.ball.X,
		BallY:            g.ball.Y,
		BallRadius:       g.ball.Radius(),
		Paddle:           g.paddle.Bounds(),
		Targets:          g.targets.All(),
		MissCount:        g.ball.MissCount(),
		MissLimit:        g.cfg.MissLimit,
		TargetsRemaining: g.ball.TargetsRemaining(),
		SpeedMult:        g.ball.SpeedMult(),
	}
}
