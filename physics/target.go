package physics

import "github.com/lixenwraith/zutopia/vmath"

// Skin identifies the visual of a target
type Skin int

const (
	SkinHorse Skin = iota
	SkinDuck
	SkinGoat
	skinCount
)

var skinNames = [skinCount]string{"horse", "duck", "goat"}

func (s Skin) String() string {
	if s < 0 || s >= skinCount {
		return "unknown"
	}
	return skinNames[s]
}

// SkinCount is the number of selectable skins
func SkinCount() int { return int(skinCount) }

// PickSkin draws a skin with the given chooser, which must behave like rand.Intn
// Out-of-range results are folded back into the valid range
func PickSkin(choose func(n int) int) Skin {
	i := choose(int(skinCount)) % int(skinCount)
	if i < 0 {
		i += int(skinCount)
	}
	return Skin(i)
}

// Target is a destructible box; ID is stable for the lifetime of one board
type Target struct {
	ID     int
	Skin   Skin
	Bounds vmath.Rect
}
