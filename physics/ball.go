package physics

import (
	"time"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/vmath"
)

// BallConfig carries the tunables of one ball
type BallConfig struct {
	SpeedStep float64
	Rule      CollisionRule
	Targets   int // initial target count, seeds targetsRemaining
}

// Report describes what one Update did; the caller maps it to presentation
type Report struct {
	Destroyed []Target // removed this update, in ID order
	PaddleHit bool
	WallHits  int
	Missed    bool
}

// Ball owns position, velocity and the terminal counters of one game
// Velocity is in board units per nanosecond
type Ball struct {
	X, Y   float64
	VX, VY float64

	radius    float64
	speedMult float64
	speedStep float64
	rule      CollisionRule

	missCount        int
	targetsRemaining int
	rampedTargets    int // targetsRemaining already accounted by the speed ramp
}

// NewBall creates a ball at the start position moving down-right
func NewBall(cfg BallConfig) *Ball {
	return &Ball{
		X:                constants.BallInitialX,
		Y:                constants.BallInitialY,
		VX:               constants.BallInitialVX,
		VY:               constants.BallInitialVY,
		radius:           constants.BallRadius,
		speedMult:        constants.InitialSpeedMult,
		speedStep:        cfg.SpeedStep,
		rule:             cfg.Rule,
		targetsRemaining: cfg.Targets,
		rampedTargets:    cfg.Targets,
	}
}

func (b *Ball) MissCount() int        { return b.missCount }
func (b *Ball) TargetsRemaining() int { return b.targetsRemaining }
func (b *Ball) SpeedMult() float64    { return b.speedMult }
func (b *Ball) Radius() float64       { return b.radius }

// Bounds returns the bounding box of the ball
func (b *Ball) Bounds() vmath.Rect {
	return vmath.RectFromCenter(b.X, b.Y, b.radius, b.radius)
}

// Update advances the ball by dt
// Collisions are resolved at the position reached by the previous update, then
// walls, speed ramp and integration run in that order
func (b *Ball) Update(dt time.Duration, targets *TargetSet, paddle *Paddle) Report {
	var report Report

	box := b.Bounds()
	if targets != nil {
		// All hits are gathered from one query before any removal
		for _, t := range targets.Overlapping(box) {
			b.deflect(t.Bounds)
			targets.Remove(t.ID)
			b.targetsRemaining--
			report.Destroyed = append(report.Destroyed, t)
		}
	}

	if paddle != nil {
		if pb := paddle.Bounds(); box.Overlaps(pb) {
			b.deflect(pb)
			report.PaddleHit = true
		}
	}

	b.reflectWalls(dt, &report)

	if b.targetsRemaining < b.rampedTargets {
		b.speedMult += b.speedStep
		b.rampedTargets--
	}

	ns := float64(dt)
	b.X = vmath.Clamp(b.X+b.VX*ns*b.speedMult, 0, constants.BoardWidth)
	b.Y = vmath.Clamp(b.Y+b.VY*ns*b.speedMult, 0, constants.BoardHeight)

	return report
}

// reflectWalls tests the position this update would reach against the walls
// Comparisons are strict so a ball resting on a wall is not reflected twice
func (b *Ball) reflectWalls(dt time.Duration, report *Report) {
	ns := float64(dt)
	nextX := b.X + b.VX*ns*b.speedMult
	nextY := b.Y + b.VY*ns*b.speedMult

	if nextX+b.radius > constants.BoardWidth && b.VX > 0 {
		b.VX = -b.VX
		report.WallHits++
	} else if nextX-b.radius < 0 && b.VX < 0 {
		b.VX = -b.VX
		report.WallHits++
	}

	if nextY+b.radius > constants.BoardHeight && b.VY > 0 {
		b.VY = -b.VY
		b.missCount++
		report.Missed = true
		report.WallHits++
	} else if nextY-b.radius < 0 && b.VY < 0 {
		b.VY = -b.VY
		report.WallHits++
	}
}
