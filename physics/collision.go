package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/zutopia/vmath"
)

// CollisionRule selects how the ball responds to hitting a box
type CollisionRule int

const (
	// CollisionVertical always reflects vertical velocity and snaps to the
	// nearer horizontal face
	CollisionVertical CollisionRule = iota

	// CollisionNearestAxis reflects horizontal velocity when a side face is
	// nearer than the top/bottom face, vertical otherwise
	CollisionNearestAxis
)

func (r CollisionRule) String() string {
	switch r {
	case CollisionVertical:
		return "vertical"
	case CollisionNearestAxis:
		return "nearest-axis"
	default:
		return "unknown"
	}
}

// ParseCollisionRule maps a config name to a rule
func ParseCollisionRule(name string) (CollisionRule, error) {
	switch name {
	case "vertical", "":
		return CollisionVertical, nil
	case "nearest-axis":
		return CollisionNearestAxis, nil
	default:
		return CollisionVertical, fmt.Errorf("unknown collision rule %q", name)
	}
}

// deflect reflects the ball off box and moves it just outside the chosen face
func (b *Ball) deflect(box vmath.Rect) {
	r := b.radius

	if b.rule == CollisionNearestAxis {
		sideDist := math.Min(math.Abs(b.X-box.MinX), math.Abs(b.X-box.MaxX))
		faceDist := math.Min(math.Abs(b.Y-box.MinY), math.Abs(b.Y-box.MaxY))
		if sideDist < faceDist {
			b.VX = -b.VX
			if vmath.Nearer(b.X, box.MaxX, box.MinX) {
				b.X = box.MaxX + r
			} else {
				b.X = box.MinX - r
			}
			return
		}
	}

	b.VY = -b.VY
	if vmath.Nearer(b.Y, box.MaxY, box.MinY) {
		b.Y = box.MaxY + r
	} else {
		b.Y = box.MinY - r
	}
}
