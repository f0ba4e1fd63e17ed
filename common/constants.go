package common

const (
	BaseWidth  = 480
	BaseHeight = 800

	// The camera shows half of the window in each axis; Ebiten scales it up.
	ViewportWidth  = BaseWidth / 2
	ViewportHeight = BaseHeight / 2

	TPS = 60
)
