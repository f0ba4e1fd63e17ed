package state

import (
	"github.com/milk9111/flappy/render"
)

// MenuState shows the background and a play button until the first tap.
type MenuState struct {
	manager    *Manager
	textures   *render.Textures
	background *render.Texture
	button     *render.Texture
}

func NewMenuState(m *Manager) *MenuState {
	spec := m.Session().Spec
	textures := render.NewTextures()
	bg := spec.Background.Sprite
	btn := spec.Menu.PlayButton
	return &MenuState{
		manager:    m,
		textures:   textures,
		background: textures.Load(bg.Texture, bg.Width, bg.Height, bg.Color.RGBA, bg.Rune()),
		button:     textures.Load(btn.Texture, btn.Width, btn.Height, btn.Color.RGBA, btn.Rune()),
	}
}

func (s *MenuState) Name() string { return "menu" }

func (s *MenuState) Update(dt float64) error {
	input := s.manager.Session().Input
	if input == nil || !input.JustTouched() {
		return nil
	}
	return s.manager.Restart()
}

func (s *MenuState) Render(batch render.Batch) {
	cam := s.manager.Session().Spec.Camera
	proj := render.Projection{
		X:      cam.ViewportWidth / 2,
		Y:      cam.ViewportHeight / 2,
		Width:  cam.ViewportWidth,
		Height: cam.ViewportHeight,
	}
	menu := s.manager.Session().Spec.Menu

	batch.Begin()
	batch.SetProjection(proj)
	batch.Draw(s.background, proj.Left(), proj.Bottom())
	bw, bh := s.button.Size()
	batch.Draw(s.button, proj.X-bw/2, proj.Y-bh/2)
	batch.DrawText(menu.Title, 8, 8)
	batch.DrawText(menu.Hint, 8, 24)
	batch.End()
}

func (s *MenuState) Dispose() {
	s.textures.Dispose(s.manager.Releaser())
}
