package constants

// Ball
const (
	// BallRadius is the ball radius in board units
	BallRadius = 8

	// BallInitialVX and BallInitialVY are in board units per nanosecond (100 units/s)
	BallInitialVX = 1e-7
	BallInitialVY = 1e-7

	// BallInitialX and BallInitialY place the ball center at game start
	BallInitialX = BoardWidth / 2.0
	BallInitialY = BoardHeight / 5.0 * 4
)

// Paddle
const (
	PaddleWidth      = 100
	PaddleHeight     = 10
	PaddleHalfWidth  = PaddleWidth / 2.0
	PaddleHalfHeight = PaddleHeight / 2.0

	// Vertical center limits and start position as fractions of BoardHeight
	PaddleInitialYFrac = 0.8
	PaddleMinYFrac     = 0.7
	PaddleMaxYFrac     = 0.9

	// PaddleInitialX is the starting center, paddle flush with the left wall
	PaddleInitialX = PaddleHalfWidth
)

// Target grid
const (
	TargetColumns = 4
	TargetRows    = 4
	TargetCount   = TargetColumns * TargetRows

	// TargetCell is the grid pitch, TargetSize the drawn square inside it
	TargetCell = BoardWidth / 5
	TargetSize = TargetCell * 0.8

	// TargetOffset is the top-left of the first cell
	TargetOffset = TargetCell / 2

	// SpatialCellSize is the broadphase grid cell edge
	SpatialCellSize = 32
)
