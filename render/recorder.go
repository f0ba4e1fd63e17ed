package render

// DrawCall is one call captured by a Recorder.
type DrawCall struct {
	Kind    string
	Texture string
	X, Y    float64
	W, H    float64
	Text    string
}

// Recorder is a Batch that keeps every call; headless runs and tests use it.
type Recorder struct {
	Projection Projection
	Calls      []DrawCall
	Released   []string
	Frames     int
}

func (r *Recorder) SetProjection(p Projection) { r.Projection = p }

func (r *Recorder) Begin() { r.Calls = r.Calls[:0] }

func (r *Recorder) End() { r.Frames++ }

func (r *Recorder) Draw(tex *Texture, x, y float64) {
	if tex == nil {
		return
	}
	r.Calls = append(r.Calls, DrawCall{Kind: "draw", Texture: tex.Name, X: x, Y: y, W: float64(tex.Width), H: float64(tex.Height)})
}

func (r *Recorder) DrawOutline(x, y, w, h float64) {
	r.Calls = append(r.Calls, DrawCall{Kind: "outline", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawText(s string, x, y float64) {
	r.Calls = append(r.Calls, DrawCall{Kind: "text", Text: s, X: x, Y: y})
}

func (r *Recorder) Release(tex *Texture) {
	if tex != nil {
		r.Released = append(r.Released, tex.Name)
	}
}

// Textures returns the texture names drawn in the last frame, in order.
func (r *Recorder) Textures() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		if c.Kind == "draw" {
			out = append(out, c.Texture)
		}
	}
	return out
}
