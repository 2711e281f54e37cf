package audio

import (
	"time"

	"github.com/lixenwraith/zutopia/engine"
)

// Player is anything that can start a sound effect
type Player interface {
	Play(st SoundType)
}

// EventHandler maps game events to sound effects
// Repeats of one effect closer than gap, by event timestamp, are dropped so a
// multi-target hit plays a single break
type EventHandler struct {
	player Player
	gap    time.Duration
	last   map[SoundType]time.Time
}

// NewEventHandler creates a handler playing through p
func NewEventHandler(p Player, gap time.Duration) *EventHandler {
	return &EventHandler{
		player: p,
		gap:    gap,
		last:   make(map[SoundType]time.Time),
	}
}

var eventSounds = map[engine.EventType]SoundType{
	engine.EventTargetDestroyed: SoundBreak,
	engine.EventPaddleHit:       SoundBounce,
	engine.EventWallBounce:      SoundBounce,
	engine.EventMiss:            SoundMiss,
	engine.EventGameWon:         SoundWin,
	engine.EventGameLost:        SoundLose,
}

// EventTypes implements engine.EventHandler
func (h *EventHandler) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventTargetDestroyed,
		engine.EventPaddleHit,
		engine.EventWallBounce,
		engine.EventMiss,
		engine.EventGameWon,
		engine.EventGameLost,
	}
}

// HandleEvent implements engine.EventHandler
func (h *EventHandler) HandleEvent(ev engine.GameEvent) {
	st, ok := eventSounds[ev.Type]
	if !ok {
		return
	}

	if last, seen := h.last[st]; seen && h.gap > 0 {
		if d := ev.Timestamp.Sub(last); d >= 0 && d < h.gap {
			return
		}
	}
	h.last[st] = ev.Timestamp
	h.player.Play(st)
}
