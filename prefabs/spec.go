package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/milk9111/flappy/render"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type BirdSpec struct {
	Name         string          `yaml:"name"`
	Gravity      float64         `yaml:"gravity"`
	MoveSpeed    float64         `yaml:"move_speed"`
	JumpVelocity float64         `yaml:"jump_velocity"`
	Transform    TransformSpec   `yaml:"transform"`
	Collider     ColliderSpec    `yaml:"collider"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

type TubeSpec struct {
	Name          string          `yaml:"name"`
	Count         int             `yaml:"count"`
	FirstX        float64         `yaml:"first_x"`
	Spacing       float64         `yaml:"spacing"`
	Gap           float64         `yaml:"gap"`
	LowestOpening float64         `yaml:"lowest_opening"`
	Fluctuation   float64         `yaml:"fluctuation"`
	GapScript     string          `yaml:"gap_script"`
	Top           SpriteSpec      `yaml:"top"`
	Bottom        SpriteSpec      `yaml:"bottom"`
	RenderLayer   RenderLayerSpec `yaml:"render_layer"`
}

type GroundSpec struct {
	Name        string          `yaml:"name"`
	OffsetY     float64         `yaml:"offset_y"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type CameraSpec struct {
	Name           string  `yaml:"name"`
	OffsetX        float64 `yaml:"offset_x"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

type BackgroundSpec struct {
	Name        string          `yaml:"name"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type MenuSpec struct {
	Title      string     `yaml:"title"`
	Hint       string     `yaml:"hint"`
	PlayButton SpriteSpec `yaml:"play_button"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type SpriteSpec struct {
	Texture string    `yaml:"texture"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Color   YAMLColor `yaml:"color"`
	Glyph   string    `yaml:"glyph"`
}

// Rune returns the first rune of Glyph, or 0 when unset.
func (s SpriteSpec) Rune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func (s SpriteSpec) validate(owner string) error {
	if s.Texture == "" {
		return fmt.Errorf("%s: sprite texture name is empty", owner)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%s: sprite %s has size %dx%d", owner, s.Texture, s.Width, s.Height)
	}
	return nil
}

// YAMLColor decodes an SVG colour name or a #rrggbb[aa] string.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := render.ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

// GameSpec bundles every prefab a session needs.
type GameSpec struct {
	Bird       BirdSpec
	Tube       TubeSpec
	Ground     GroundSpec
	Camera     CameraSpec
	Background BackgroundSpec
	Menu       MenuSpec
	// GapSource is the Tengo source named by Tube.GapScript, if any.
	GapSource []byte
}

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// LoadGameSpec reads every prefab, preferring files on disk over the
// embedded copies.
func LoadGameSpec() (*GameSpec, error) {
	var (
		spec GameSpec
		err  error
	)
	if spec.Bird, err = LoadSpec[BirdSpec]("bird.yaml"); err != nil {
		return nil, err
	}
	if spec.Tube, err = LoadSpec[TubeSpec]("tube.yaml"); err != nil {
		return nil, err
	}
	if spec.Ground, err = LoadSpec[GroundSpec]("ground.yaml"); err != nil {
		return nil, err
	}
	if spec.Camera, err = LoadSpec[CameraSpec]("camera.yaml"); err != nil {
		return nil, err
	}
	if spec.Background, err = LoadSpec[BackgroundSpec]("background.yaml"); err != nil {
		return nil, err
	}
	if spec.Menu, err = LoadSpec[MenuSpec]("menu.yaml"); err != nil {
		return nil, err
	}
	if spec.Tube.GapScript != "" {
		src, err := LoadScript(spec.Tube.GapScript)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", spec.Tube.GapScript, err)
		}
		spec.GapSource = src
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *GameSpec) Validate() error {
	if s.Tube.Count < 1 {
		return fmt.Errorf("%w: tube count must be positive, got %d", ErrInvalidSpec, s.Tube.Count)
	}
	if s.Tube.Spacing < 0 {
		return fmt.Errorf("%w: tube spacing must not be negative", ErrInvalidSpec)
	}
	if s.Tube.Fluctuation < 0 {
		return fmt.Errorf("%w: tube fluctuation must not be negative", ErrInvalidSpec)
	}
	if s.Camera.ViewportWidth <= 0 || s.Camera.ViewportHeight <= 0 {
		return fmt.Errorf("%w: camera viewport must be positive", ErrInvalidSpec)
	}
	sprites := []struct {
		owner string
		s     SpriteSpec
	}{
		{"bird", s.Bird.Sprite},
		{"tube top", s.Tube.Top},
		{"tube bottom", s.Tube.Bottom},
		{"ground", s.Ground.Sprite},
		{"background", s.Background.Sprite},
		{"menu", s.Menu.PlayButton},
	}
	for _, sp := range sprites {
		if err := sp.s.validate(sp.owner); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
	}
	if s.Tube.Top.Width != s.Tube.Bottom.Width || s.Tube.Top.Height != s.Tube.Bottom.Height {
		return fmt.Errorf("%w: top and bottom tube sprites must share a size", ErrInvalidSpec)
	}
	// Two tiles must cover the view for recycling to keep it covered.
	if float64(s.Ground.Sprite.Width)*2 < s.Camera.ViewportWidth {
		return fmt.Errorf("%w: ground tile width %d cannot cover viewport %.0f", ErrInvalidSpec, s.Ground.Sprite.Width, s.Camera.ViewportWidth)
	}
	return nil
}
