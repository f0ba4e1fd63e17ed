package component

// Camera follows the bird horizontally. Its Transform holds the view centre.
type Camera struct {
	OffsetX        float64
	ViewportWidth  float64
	ViewportHeight float64
}

var CameraComponent = NewComponent[Camera]()

// Left returns the x of the camera's left edge for a centre at x.
func (c *Camera) Left(x float64) float64 {
	return x - c.ViewportWidth/2
}
