package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var outlineColor = color.RGBA{R: 255, A: 200}

// EbitenBatch draws onto an Ebiten screen image. Images are built lazily from
// the texture description and kept until the texture is released.
type EbitenBatch struct {
	screen  *ebiten.Image
	proj    Projection
	images  map[*Texture]*ebiten.Image
	drawing bool
}

func NewEbitenBatch() *EbitenBatch {
	return &EbitenBatch{images: make(map[*Texture]*ebiten.Image)}
}

// Target sets the image the next frame is drawn onto.
func (b *EbitenBatch) Target(screen *ebiten.Image) {
	b.screen = screen
}

func (b *EbitenBatch) SetProjection(p Projection) {
	b.proj = p
}

func (b *EbitenBatch) Begin() {
	b.drawing = true
}

func (b *EbitenBatch) End() {
	b.drawing = false
}

func (b *EbitenBatch) Draw(tex *Texture, x, y float64) {
	if !b.drawing || b.screen == nil || tex == nil {
		return
	}
	img := b.image(tex)
	if img == nil {
		return
	}
	sx, sy := b.proj.ToScreen(x, y, float64(tex.Height))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sx, sy)
	b.screen.DrawImage(img, op)
}

func (b *EbitenBatch) DrawOutline(x, y, w, h float64) {
	if !b.drawing || b.screen == nil {
		return
	}
	sx, sy := b.proj.ToScreen(x, y, h)
	vector.StrokeRect(b.screen, float32(sx), float32(sy), float32(w), float32(h), 1.0, outlineColor, false)
}

func (b *EbitenBatch) DrawText(s string, x, y float64) {
	if !b.drawing || b.screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(b.screen, s, int(x), int(y))
}

// Release deallocates the GPU image backing tex.
func (b *EbitenBatch) Release(tex *Texture) {
	img, ok := b.images[tex]
	if !ok {
		return
	}
	img.Deallocate()
	delete(b.images, tex)
}

func (b *EbitenBatch) image(tex *Texture) *ebiten.Image {
	if img, ok := b.images[tex]; ok {
		return img
	}
	if tex.Width <= 0 || tex.Height <= 0 {
		return nil
	}
	img := ebiten.NewImage(tex.Width, tex.Height)
	img.Fill(tex.Color)
	b.images[tex] = img
	return img
}
