// Package engine drives one game of Zutopia: the state machine, the board
// lifecycle and the event plumbing between the simulation and its observers.
//
// Event System
//
// The controller never calls audio or renderers directly. Each tick it turns
// the ball report into GameEvents pushed to a shared EventQueue, then the
// EventRouter dispatches them to registered handlers before Tick returns.
//
// Event Flow:
//  1. Game.Tick runs Ball.Update and inspects the Report
//  2. One event per observation is pushed (EventTargetDestroyed, EventMiss, ...)
//  3. Terminal transitions push EventGameWon/EventGameLost then EventGameReset
//  4. EventRouter.DispatchAll consumes the queue in FIFO order
//
// Thread-Safety:
//   - Push is lock-free (CAS loop) and safe for concurrent producers
//   - Consume is single-consumer (the goroutine owning Game)
//   - Peek is safe for read-only inspection
//   - The ring overwrites the oldest events when full
package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/physics"
	"github.com/lixenwraith/zutopia/vmath"
)

// EventType represents the type of game event
type EventType int

const (
	// EventTargetDestroyed signals a target was removed by the ball
	// Payload: TargetDestroyedPayload
	EventTargetDestroyed EventType = iota

	// EventPaddleHit signals the ball was deflected by the paddle
	// Payload: nil
	EventPaddleHit

	// EventWallBounce signals a reflection off the left, right or top wall
	// Payload: nil
	EventWallBounce

	// EventMiss signals a bottom wall hit
	// Payload: int, miss count after the hit
	EventMiss

	// EventGameStart signals NEW -> ACTIVE
	// Payload: nil
	EventGameStart

	// EventGameWon signals every target was destroyed
	// Payload: int, misses at the end of the game
	EventGameWon

	// EventGameLost signals the miss limit was reached
	// Payload: int, targets left at the end of the game
	EventGameLost

	// EventGameReset signals a fresh board was built and the game is NEW
	// Payload: int, generation of the new board
	EventGameReset
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventTargetDestroyed:
		return "TargetDestroyed"
	case EventPaddleHit:
		return "PaddleHit"
	case EventWallBounce:
		return "WallBounce"
	case EventMiss:
		return "Miss"
	case EventGameStart:
		return "GameStart"
	case EventGameWon:
		return "GameWon"
	case EventGameLost:
		return "GameLost"
	case EventGameReset:
		return "GameReset"
	default:
		return "Unknown"
	}
}

// TargetDestroyedPayload describes a removed target
type TargetDestroyedPayload struct {
	ID     int
	Skin   physics.Skin
	Bounds vmath.Rect
}

// GameEvent represents a single game event with associated metadata
// Frame is the controller tick counter when the event was created
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}

// EventQueue is a lock-free ring buffer for game events
//
// Overflow Behavior:
//   - When the buffer is full, the oldest events are overwritten
//   - Head is advanced to keep the ring invariant
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   atomic.Uint64 // next position to read
	tail   atomic.Uint64 // next position to write
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event to the queue
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail&constants.EventBufferMask] = event

			// Overwriting unread events, drop the oldest
			currentHead := eq.head.Load()
			if nextTail-currentHead > constants.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-constants.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and marks them consumed
// Returns nil when the queue is empty
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	result := eq.snapshot(currentHead, currentTail)
	if result == nil {
		return nil
	}

	for !eq.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = eq.head.Load()
		currentTail = eq.tail.Load()
		if currentTail == currentHead {
			return result
		}
	}
	return result
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	return eq.snapshot(eq.head.Load(), eq.tail.Load())
}

// Len returns the number of pending events, capped at the buffer size
func (eq *EventQueue) Len() int {
	available := eq.tail.Load() - eq.head.Load()
	if available > constants.EventQueueSize {
		return constants.EventQueueSize
	}
	return int(available)
}

func (eq *EventQueue) snapshot(head, tail uint64) []GameEvent {
	available := tail - head
	if available == 0 {
		return nil
	}

	// Cap at buffer size to handle wrap-around
	if available > constants.EventQueueSize {
		available = constants.EventQueueSize
		head = tail - constants.EventQueueSize
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(head+i)&constants.EventBufferMask]
	}
	return result
}
