package constants

// GameTitle is shown in the window title and the status bar
const GameTitle = "Zutopia"

// Board dimensions in logical units
const (
	BoardWidth  = 400
	BoardHeight = 600
)

// Game rule defaults, overridable through config
const (
	// DefaultMissLimit is the number of bottom-wall hits that ends the game
	DefaultMissLimit = 5

	// DefaultSpeedStep is added to the ball speed multiplier per destroyed target
	DefaultSpeedStep = 0.2

	// InitialSpeedMult is the ball speed multiplier at game start
	InitialSpeedMult = 1.0
)

// Status messages
const (
	StatusPrompt       = "Click mouse to start"
	StatusLostFormat   = "Game Over: %d misses"
	StatusWonFormat    = "You won! %d targets left"
	StatusActiveFormat = "Misses %d/%d  Targets %d  Speed x%.1f"
)
