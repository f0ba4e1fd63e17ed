package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/flappy/render"
)

// Batch draws textures as blocks of glyphs, scaling the camera viewport onto
// the whole terminal.
type Batch struct {
	screen tcell.Screen
	proj   render.Projection
	cols   int
	rows   int
	styles map[*render.Texture]tcell.Style
}

func NewBatch(screen tcell.Screen) *Batch {
	return &Batch{screen: screen, styles: make(map[*render.Texture]tcell.Style)}
}

func (b *Batch) SetProjection(p render.Projection) {
	b.proj = p
}

func (b *Batch) Begin() {
	b.cols, b.rows = b.screen.Size()
	b.screen.Clear()
}

func (b *Batch) End() {
	b.screen.Show()
}

func (b *Batch) scale() (float64, float64) {
	if b.proj.Width <= 0 || b.proj.Height <= 0 {
		return 1, 1
	}
	return float64(b.cols) / b.proj.Width, float64(b.rows) / b.proj.Height
}

// cells returns the half-open cell range covered by a world-space box.
func (b *Batch) cells(x, y, w, h float64) (c0, r0, c1, r1 int) {
	sx, sy := b.proj.ToScreen(x, y, h)
	cs, rs := b.scale()
	c0 = max(0, int(math.Floor(sx*cs)))
	r0 = max(0, int(math.Floor(sy*rs)))
	c1 = min(b.cols, int(math.Ceil((sx+w)*cs)))
	r1 = min(b.rows, int(math.Ceil((sy+h)*rs)))
	return
}

func (b *Batch) style(tex *render.Texture) tcell.Style {
	if st, ok := b.styles[tex]; ok {
		return st
	}
	c := tex.Color
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	fg := tcell.NewRGBColor(int32(c.R)/2, int32(c.G)/2, int32(c.B)/2)
	st := tcell.StyleDefault.Background(bg).Foreground(fg)
	b.styles[tex] = st
	return st
}

func (b *Batch) Draw(tex *render.Texture, x, y float64) {
	if tex == nil {
		return
	}
	w, h := tex.Size()
	c0, r0, c1, r1 := b.cells(x, y, w, h)
	st := b.style(tex)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			b.screen.SetContent(c, r, tex.Glyph, nil, st)
		}
	}
}

func (b *Batch) DrawOutline(x, y, w, h float64) {
	c0, r0, c1, r1 := b.cells(x, y, w, h)
	if c0 >= c1 || r0 >= r1 {
		return
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for c := c0; c < c1; c++ {
		b.screen.SetContent(c, r0, '-', nil, st)
		b.screen.SetContent(c, r1-1, '-', nil, st)
	}
	for r := r0; r < r1; r++ {
		b.screen.SetContent(c0, r, '|', nil, st)
		b.screen.SetContent(c1-1, r, '|', nil, st)
	}
}

// DrawText writes s on one row starting at the cell under screen (x, y).
func (b *Batch) DrawText(s string, x, y float64) {
	cs, rs := b.scale()
	col, row := int(x*cs), int(y*rs)
	if row < 0 || row >= b.rows {
		return
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for _, r := range s {
		if col >= b.cols {
			return
		}
		if col >= 0 {
			b.screen.SetContent(col, row, r, nil, st)
		}
		col++
	}
}

// Release drops the cached style; terminals hold no texture memory.
func (b *Batch) Release(tex *render.Texture) {
	delete(b.styles, tex)
}
