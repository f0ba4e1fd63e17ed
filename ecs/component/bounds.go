package component

import "github.com/jakecoffman/cp/v2"

// Bounds is an axis-aligned collision box relative to Transform.
type Bounds struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

var BoundsComponent = NewComponent[Bounds]()

// BB returns the box in world space for an entity at t.
func (b *Bounds) BB(t *Transform) cp.BB {
	l := t.X + b.OffsetX
	bottom := t.Y + b.OffsetY
	return cp.NewBB(l, bottom, l+b.Width, bottom+b.Height)
}
