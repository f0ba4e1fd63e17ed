package render

// Projection is an orthographic camera: a centre point and the size of the
// visible area, in world units with y pointing up.
type Projection struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (p Projection) Left() float64   { return p.X - p.Width/2 }
func (p Projection) Right() float64  { return p.X + p.Width/2 }
func (p Projection) Bottom() float64 { return p.Y - p.Height/2 }
func (p Projection) Top() float64    { return p.Y + p.Height/2 }

// ToScreen maps the bottom-left corner of a w x h box at world (x, y) to the
// top-left corner in screen space where y grows downwards.
func (p Projection) ToScreen(x, y, h float64) (float64, float64) {
	return x - p.Left(), p.Top() - (y + h)
}

// Releaser frees backend resources held for a texture.
type Releaser interface {
	Release(tex *Texture)
}

// Batch collects draw calls for one frame.
type Batch interface {
	Releaser

	SetProjection(p Projection)
	Begin()
	// Draw places tex with its bottom-left corner at world (x, y).
	Draw(tex *Texture, x, y float64)
	// DrawOutline strokes a world-space box; used by the debug overlay.
	DrawOutline(x, y, w, h float64)
	// DrawText writes s with its top-left corner at screen (x, y).
	DrawText(s string, x, y float64)
	End()
}
