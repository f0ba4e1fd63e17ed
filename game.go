package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
	"github.com/milk9111/flappy/state"
)

type Game struct {
	frames int

	manager *state.Manager
	batch   *render.EbitenBatch
	watcher *prefabs.Watcher
	debug   bool

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(manager *state.Manager, batch *render.EbitenBatch, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		manager: manager,
		batch:   batch,
		watcher: watcher,
		debug:   debug,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++

	for _, err := range g.watcher.Err() {
		log.Printf("game: watch: %v", err)
	}
	if changed := g.watcher.Changed(); len(changed) > 0 {
		log.Printf("game: prefabs changed: %v", changed)
		if err := g.manager.Reload(); err != nil {
			log.Printf("game: reload: %v", err)
		}
	}

	if pausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	return g.manager.Update(1.0 / float64(ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.batch.Target(screen)
	g.manager.Render(g.batch)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d  FPS: %.1f", g.frames, ebiten.ActualFPS()), 8, common.ViewportHeight-20)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) resume() {
	g.paused = false
}

func (g *Game) restart() {
	if err := g.manager.Restart(); err != nil {
		log.Printf("game: restart: %v", err)
		return
	}
	g.paused = false
}

// Layout renders at the camera's viewport size; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ViewportWidth, common.ViewportHeight
}
