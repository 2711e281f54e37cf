package engine

// GameState is the phase of the game controller
type GameState int

const (
	StateNew GameState = iota
	StateActive
	StateWon
	StateLost
)

func (s GameState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateActive:
		return "ACTIVE"
	case StateWon:
		return "WON"
	case StateLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the state ends a game
func (s GameState) Terminal() bool {
	return s == StateWon || s == StateLost
}
