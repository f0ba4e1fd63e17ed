package render

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "skyblue", want: color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}},
		{in: " SkyBlue ", want: color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}},
		{in: "#102030", want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{in: "#10203040", want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "", wantErr: true},
		{in: "#12", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "not-a-colour", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestTexturesLoadCachesByName(t *testing.T) {
	ts := NewTextures()
	a := ts.Load("bird", 34, 24, color.RGBA{A: 255}, 0)
	b := ts.Load("bird", 1, 1, color.RGBA{}, 'x')
	if a != b {
		t.Fatalf("expected cached texture to be returned")
	}
	if a.Glyph != ' ' {
		t.Fatalf("expected default glyph, got %q", a.Glyph)
	}
	if w, h := a.Size(); w != 34 || h != 24 {
		t.Fatalf("unexpected size %vx%v", w, h)
	}
}

func TestTexturesDisposeReleasesAll(t *testing.T) {
	ts := NewTextures()
	ts.Load("tube_top", 52, 320, color.RGBA{}, '#')
	ts.Load("bird", 34, 24, color.RGBA{}, '>')

	rec := &Recorder{}
	ts.Dispose(rec)

	if ts.Len() != 0 {
		t.Fatalf("expected empty set after dispose, got %d", ts.Len())
	}
	if len(rec.Released) != 2 || rec.Released[0] != "bird" || rec.Released[1] != "tube_top" {
		t.Fatalf("unexpected release order %v", rec.Released)
	}
}

func TestProjectionToScreen(t *testing.T) {
	p := Projection{X: 120, Y: 200, Width: 240, Height: 400}
	x, y := p.ToScreen(0, 0, 10)
	if x != 0 || y != 390 {
		t.Fatalf("expected (0, 390), got (%v, %v)", x, y)
	}
	if p.Left() != 0 || p.Right() != 240 || p.Bottom() != 0 || p.Top() != 400 {
		t.Fatalf("unexpected edges %v %v %v %v", p.Left(), p.Right(), p.Bottom(), p.Top())
	}
}
