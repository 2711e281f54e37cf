package engine

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/physics"
)

// Config holds the rule tunables of a game
type Config struct {
	MissLimit int
	SpeedStep float64
	Rule      physics.CollisionRule
	Seed      uint64 // 0 seeds from the runtime source
}

// DefaultConfig returns the stock rules
func DefaultConfig() Config {
	return Config{
		MissLimit: constants.DefaultMissLimit,
		SpeedStep: constants.DefaultSpeedStep,
		Rule:      physics.CollisionVertical,
	}
}

// Option customizes a Game at construction
type Option func(*Game)

// WithChooser replaces the skin chooser; choose must behave like rand.IntN
func WithChooser(choose func(n int) int) Option {
	return func(g *Game) {
		g.choose = choose
	}
}

// WithTimeProvider replaces the clock used for event timestamps
func WithTimeProvider(tp TimeProvider) Option {
	return func(g *Game) {
		g.clock = tp
	}
}

// Game owns the board and runs the NEW -> ACTIVE -> WON/LOST -> NEW cycle
// Not safe for concurrent use; hosts drive it from a single goroutine
type Game struct {
	cfg    Config
	choose func(n int) int
	clock  TimeProvider

	state   GameState
	status  Status
	ball    *physics.Ball
	paddle  *physics.Paddle
	targets *physics.TargetSet

	generation int
	frame      int64

	queue  *EventQueue
	router *EventRouter
}

// NewGame builds a game in NEW with a fresh board
func NewGame(cfg Config, opts ...Option) *Game {
	if cfg.MissLimit < 1 {
		cfg.MissLimit = constants.DefaultMissLimit
	}

	g := &Game{
		cfg:   cfg,
		clock: NewMonotonicTimeProvider(),
		queue: NewEventQueue(),
	}
	g.router = NewEventRouter(g.queue)

	for _, opt := range opts {
		opt(g)
	}
	if g.choose == nil {
		g.choose = newChooser(cfg.Seed)
	}

	g.buildBoard()
	g.state = StateNew
	g.status = outcomeStatus(StateNew, 0, 0)
	return g
}

func newChooser(seed uint64) func(n int) int {
	var rng *rand.Rand
	if seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	return rng.IntN
}

func (g *Game) buildBoard() {
	g.paddle = physics.NewPaddle()
	g.targets = spawnTargets(g.choose)
	g.ball = physics.NewBall(physics.BallConfig{
		SpeedStep: g.cfg.SpeedStep,
		Rule:      g.cfg.Rule,
		Targets:   g.targets.Len(),
	})
}

// Register attaches an observer to the event router
func (g *Game) Register(h EventHandler) {
	g.router.Register(h)
}

// Events exposes the queue for inspection
func (g *Game) Events() *EventQueue {
	return g.queue
}

func (g *Game) push(t EventType, payload any) {
	g.queue.Push(GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: g.clock.Now(),
	})
}

// State returns the current phase
func (g *Game) State() GameState {
	return g.state
}

// Generation counts completed restarts
func (g *Game) Generation() int {
	return g.generation
}

// MissLimit returns the effective miss limit
func (g *Game) MissLimit() int {
	return g.cfg.MissLimit
}

// Start moves NEW to ACTIVE, false in any other state
func (g *Game) Start() bool {
	if g.state != StateNew {
		return false
	}
	g.state = StateActive
	g.push(EventGameStart, nil)
	log.Printf("Game %d started", g.generation)
	return true
}

// MovePointer forwards the pointer to the paddle, in any state
func (g *Game) MovePointer(x, y float64) {
	g.paddle.UpdatePosition(x, y)
}

// Tick advances an ACTIVE game by dt and returns the resulting state
// A terminal outcome is returned once; the board is already rebuilt in NEW
// Queued events are dispatched before returning, in every state
func (g *Game) Tick(dt time.Duration) GameState {
	defer g.router.DispatchAll()

	if g.state != StateActive {
		return g.state
	}
	g.frame++

	report := g.ball.Update(dt, g.targets, g.paddle)
	g.publish(report)

	outcome := g.evaluate()
	switch outcome {
	case StateLost:
		g.push(EventGameLost, g.ball.TargetsRemaining())
	case StateWon:
		g.push(EventGameWon, g.ball.MissCount())
	default:
		return StateActive
	}

	log.Printf("Game %d %s: misses %d, targets left %d",
		g.generation, outcome, g.ball.MissCount(), g.ball.TargetsRemaining())
	g.state = outcome
	g.Restart(outcome)
	return outcome
}

func (g *Game) publish(r physics.Report) {
	for _, t := range r.Destroyed {
		g.push(EventTargetDestroyed, TargetDestroyedPayload{ID: t.ID, Skin: t.Skin, Bounds: t.Bounds})
	}
	if r.PaddleHit {
		g.push(EventPaddleHit, nil)
	}
	walls := r.WallHits
	if r.Missed {
		walls--
		g.push(EventMiss, g.ball.MissCount())
		log.Printf("Miss %d/%d", g.ball.MissCount(), g.cfg.MissLimit)
	}
	for i := 0; i < walls; i++ {
		g.push(EventWallBounce, nil)
	}
}

// evaluate checks the miss limit before the target count
func (g *Game) evaluate() GameState {
	switch {
	case g.ball.MissCount() >= g.cfg.MissLimit:
		return StateLost
	case g.ball.TargetsRemaining() == 0:
		return StateWon
	default:
		return StateActive
	}
}

// Restart rebuilds the board and returns to NEW
// The status shows outcome with the counters of the game being replaced
func (g *Game) Restart(outcome GameState) {
	g.status = outcomeStatus(outcome, g.ball.MissCount(), g.ball.TargetsRemaining())
	g.buildBoard()
	g.state = StateNew
	g.generation++
	g.push(EventGameReset, g.generation)
	log.Printf("Board rebuilt, generation %d", g.generation)
}

// Status returns the label for the current state
// While ACTIVE it is a single line of live counters
func (g *Game) Status() Status {
	if g.state == StateActive {
		return Status{Headline: fmt.Sprintf(constants.StatusActiveFormat,
			g.ball.MissCount(), g.cfg.MissLimit, g.ball.TargetsRemaining(), g.ball.SpeedMult())}
	}
	return g.status
}
