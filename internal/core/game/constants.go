package game

// Arena and physics constants, in unreal units.
const (
	SideWallX     = 4096.0
	BackWallY     = 5120.0
	CeilingZ      = 2044.0
	GoalHeight    = 642.775
	GoalThreshold = 5215.5

	// CornerLine is |x|+|y| along the 45 degree corner chamfers.
	CornerLine = 8064.0

	BallRadius   = 92.75
	BallMaxSpeed = 6000.0
	CarMaxSpeed  = 2300.0
)
