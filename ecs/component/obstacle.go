package component

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/milk9111/flappy/render"
)

// Obstacle is a tube pair. Transform.X is the left edge shared by both tubes.
type Obstacle struct {
	// Index is the slot in the ordered ring, fixed for the session.
	Index   int
	Width   float64
	Height  float64
	Spacing float64
	Gap     float64
	// TopY is the bottom edge of the top tube; BottomY the bottom edge of
	// the bottom tube.
	TopY    float64
	BottomY float64
	Passed  bool

	Top    *render.Texture
	Bottom *render.Texture
}

var ObstacleComponent = NewComponent[Obstacle]()

// Place moves the pair to x and opens its gap above topY - Gap.
func (o *Obstacle) Place(t *Transform, x, topY float64) {
	t.X = x
	o.TopY = topY
	o.BottomY = topY - o.Gap - o.Height
	o.Passed = false
}

func (o *Obstacle) TopBB(x float64) cp.BB {
	return cp.NewBB(x, o.TopY, x+o.Width, o.TopY+o.Height)
}

func (o *Obstacle) BottomBB(x float64) cp.BB {
	return cp.NewBB(x, o.BottomY, x+o.Width, o.BottomY+o.Height)
}
