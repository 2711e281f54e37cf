package physics

import (
	"sort"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/vmath"
)

var (
	tagTarget = resolv.NewTag("target")
	tagProbe  = resolv.NewTag("probe")
)

// boardBounds limits broadphase probes to the indexed area
var boardBounds = vmath.Rect{MaxX: constants.BoardWidth, MaxY: constants.BoardHeight}

// TargetSet holds the live targets of one board
// Candidates come from a resolv grid space; a strict AABB test decides hits so
// edge contact never counts and containment always does
type TargetSet struct {
	space   *resolv.Space
	targets map[int]Target
	shapes  map[int]resolv.IShape
	owners  map[resolv.IShape]int
}

// NewTargetSet creates an empty set covering the board
func NewTargetSet() *TargetSet {
	return &TargetSet{
		space:   resolv.NewSpace(constants.BoardWidth, constants.BoardHeight, constants.SpatialCellSize, constants.SpatialCellSize),
		targets: make(map[int]Target),
		shapes:  make(map[int]resolv.IShape),
		owners:  make(map[resolv.IShape]int),
	}
}

// Add inserts a target, replacing any target with the same ID
func (s *TargetSet) Add(t Target) {
	s.Remove(t.ID)

	b := t.Bounds
	shape := resolv.NewRectangleFromTopLeft(b.MinX, b.MinY, b.Width(), b.Height())
	shape.Tags().Set(tagTarget)
	s.space.Add(shape)

	s.targets[t.ID] = t
	s.shapes[t.ID] = shape
	s.owners[shape] = t.ID
}

// Remove deletes a target by ID, returns false if it was not live
func (s *TargetSet) Remove(id int) bool {
	shape, ok := s.shapes[id]
	if !ok {
		return false
	}
	s.space.Remove(shape)
	delete(s.owners, shape)
	delete(s.shapes, id)
	delete(s.targets, id)
	return true
}

// Get returns a live target by ID
func (s *TargetSet) Get(id int) (Target, bool) {
	t, ok := s.targets[id]
	return t, ok
}

// Len returns the number of live targets
func (s *TargetSet) Len() int {
	return len(s.targets)
}

// All returns a copy of the live targets in ID order
func (s *TargetSet) All() []Target {
	out := make([]Target, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Overlapping returns every live target whose box overlaps the given box, in ID order
// The set is not modified; callers remove hits after resolving them
func (s *TargetSet) Overlapping(box vmath.Rect) []Target {
	if len(s.targets) == 0 {
		return nil
	}

	probeBox, ok := clipRect(box, boardBounds)
	if !ok {
		return nil
	}

	probe := resolv.NewRectangleFromTopLeft(probeBox.MinX, probeBox.MinY, probeBox.Width(), probeBox.Height())
	probe.Tags().Set(tagProbe)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	// Broadphase only; a box fully inside a target has no edge crossings
	seen := make(map[int]bool)
	var hits []Target
	probe.SelectTouchingCells(0).FilterShapes().ByTags(tagTarget).ForEach(func(shape resolv.IShape) bool {
		id, ok := s.owners[shape]
		if !ok || seen[id] {
			return true
		}
		seen[id] = true
		if t := s.targets[id]; t.Bounds.Overlaps(box) {
			hits = append(hits, t)
		}
		return true
	})

	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	return hits
}

// clipRect intersects two boxes, false when the result has no area
func clipRect(a, b vmath.Rect) (vmath.Rect, bool) {
	r := vmath.Rect{
		MinX: max(a.MinX, b.MinX),
		MinY: max(a.MinY, b.MinY),
		MaxX: min(a.MaxX, b.MaxX),
		MaxY: min(a.MaxY, b.MaxY),
	}
	if r.MinX >= r.MaxX || r.MinY >= r.MaxY {
		return r, false
	}
	return r, true
}
