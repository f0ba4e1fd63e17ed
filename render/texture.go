package render

import (
	"image/color"
	"sort"
)

// Texture describes a flat-coloured sprite. Backends turn it into whatever
// they draw with and cache the result until Release.
type Texture struct {
	Name   string
	Width  int
	Height int
	Color  color.RGBA
	// Glyph is the rune used by the terminal backend.
	Glyph rune
}

// Size returns the texture dimensions in world units.
func (t *Texture) Size() (float64, float64) {
	if t == nil {
		return 0, 0
	}
	return float64(t.Width), float64(t.Height)
}

// Textures is the set of textures owned by one game state.
type Textures struct {
	byName map[string]*Texture
}

func NewTextures() *Textures {
	return &Textures{byName: make(map[string]*Texture)}
}

// Load returns the texture called name, creating it on first use. Later
// calls with the same name return the cached texture unchanged.
func (ts *Textures) Load(name string, width, height int, c color.RGBA, glyph rune) *Texture {
	if tex, ok := ts.byName[name]; ok {
		return tex
	}
	if glyph == 0 {
		glyph = ' '
	}
	tex := &Texture{Name: name, Width: width, Height: height, Color: c, Glyph: glyph}
	ts.byName[name] = tex
	return tex
}

func (ts *Textures) Len() int {
	return len(ts.byName)
}

// Dispose releases every texture through r and empties the set.
func (ts *Textures) Dispose(r Releaser) {
	names := make([]string, 0, len(ts.byName))
	for name := range ts.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if r != nil {
			r.Release(ts.byName[name])
		}
		delete(ts.byName, name)
	}
}
