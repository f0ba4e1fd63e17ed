package entity

import (
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

func loadTexture(textures *render.Textures, s prefabs.SpriteSpec) *render.Texture {
	return textures.Load(s.Texture, s.Width, s.Height, s.Color.RGBA, s.Rune())
}
