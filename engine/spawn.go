package engine

import (
	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/physics"
	"github.com/lixenwraith/zutopia/vmath"
)

// targetBounds returns the box of the grid cell at (col, row)
func targetBounds(col, row int) vmath.Rect {
	x := float64(col*constants.TargetCell + constants.TargetOffset)
	y := float64(row*constants.TargetCell + constants.TargetOffset)
	return vmath.RectFromTopLeft(x, y, constants.TargetSize, constants.TargetSize)
}

// spawnTargets builds the full target grid, IDs assigned column by column
func spawnTargets(choose func(n int) int) *physics.TargetSet {
	set := physics.NewTargetSet()
	id := 0
	for col := 0; col < constants.TargetColumns; col++ {
		for row := 0; row < constants.TargetRows; row++ {
			set.Add(physics.Target{
				ID:     id,
				Skin:   physics.PickSkin(choose),
				Bounds: targetBounds(col, row),
			})
			id++
		}
	}
	return set
}
