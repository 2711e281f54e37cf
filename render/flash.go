package render

import (
	"time"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/physics"
	"github.com/lixenwraith/zutopia/vmath"
)

// Flash is a destroyed target still being highlighted
// Fade runs from 0 at destruction to 1 at expiry
type Flash struct {
	Bounds vmath.Rect
	Skin   physics.Skin
	Fade   float64
}

type flash struct {
	bounds vmath.Rect
	skin   physics.Skin
	frame  int64
	until  time.Time
}

// FlashTracker records target removals from game events for any presenter
type FlashTracker struct {
	clock   engine.TimeProvider
	flashes []flash
}

// NewFlashTracker creates a tracker timed by clock
func NewFlashTracker(clock engine.TimeProvider) *FlashTracker {
	return &FlashTracker{clock: clock}
}

// EventTypes implements engine.EventHandler
func (ft *FlashTracker) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventTargetDestroyed, engine.EventGameReset}
}

// HandleEvent implements engine.EventHandler
func (ft *FlashTracker) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventTargetDestroyed:
		p, ok := ev.Payload.(engine.TargetDestroyedPayload)
		if !ok {
			return
		}
		ft.flashes = append(ft.flashes, flash{
			bounds: p.Bounds,
			skin:   p.Skin,
			frame:  ev.Frame,
			until:  ft.clock.Now().Add(constants.RemovalFlashDuration),
		})
	case engine.EventGameReset:
		// The final hit of a game shares the reset's frame and keeps its flash
		kept := ft.flashes[:0]
		for _, f := range ft.flashes {
			if f.frame >= ev.Frame {
				kept = append(kept, f)
			}
		}
		ft.flashes = kept
	}
}

// Live drops expired flashes and returns the rest
func (ft *FlashTracker) Live() []Flash {
	now := ft.clock.Now()
	kept := ft.flashes[:0]
	out := make([]Flash, 0, len(ft.flashes))
	for _, f := range ft.flashes {
		remaining := f.until.Sub(now)
		if remaining <= 0 {
			continue
		}
		kept = append(kept, f)
		out = append(out, Flash{
			Bounds: f.bounds,
			Skin:   f.skin,
			Fade:   1 - float64(remaining)/float64(constants.RemovalFlashDuration),
		})
	}
	ft.flashes = kept
	return out
}

// ActiveFlashes returns the number of flashes not yet pruned
func (ft *FlashTracker) ActiveFlashes() int {
	return len(ft.flashes)
}
