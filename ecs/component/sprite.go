package component

import "github.com/milk9111/flappy/render"

type Sprite struct {
	Texture *render.Texture
}

var SpriteComponent = NewComponent[Sprite]()
