package term

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/state"
)

const pauseBanner = "PAUSED  p resume  r restart  q quit"

// Game drives the state manager from a tcell screen.
type Game struct {
	screen  tcell.Screen
	batch   *Batch
	manager *state.Manager
	input   *Input
	watcher *prefabs.Watcher
	paused  bool
}

func NewGame(screen tcell.Screen, batch *Batch, manager *state.Manager, input *Input) *Game {
	return &Game{screen: screen, batch: batch, manager: manager, input: input}
}

// Watch reloads prefabs whenever w reports a change.
func (g *Game) Watch(w *prefabs.Watcher) {
	g.watcher = w
}

func (g *Game) Paused() bool {
	return g.paused
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			return false
		case ev.Key() == tcell.KeyEscape:
			g.paused = !g.paused
		case ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyUp:
			g.tap()
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P':
				g.paused = !g.paused
			case 'r', 'R':
				if g.paused {
					g.restart()
				}
			case ' ':
				g.tap()
			}
		}
	case *tcell.EventMouse:
		if !g.paused {
			g.input.mouse(ev)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) tap() {
	if !g.paused {
		g.input.Touch()
	}
}

func (g *Game) restart() {
	if err := g.manager.Restart(); err != nil {
		log.Printf("term: restart: %v", err)
		return
	}
	g.paused = false
}

// Step advances one frame and draws it.
func (g *Game) Step(dt float64) error {
	for _, err := range g.watcher.Err() {
		log.Printf("term: watch: %v", err)
	}
	if changed := g.watcher.Changed(); len(changed) > 0 {
		log.Printf("term: prefabs changed: %v", changed)
		if err := g.manager.Reload(); err != nil {
			log.Printf("term: reload: %v", err)
		}
	}

	if !g.paused {
		if err := g.manager.Update(dt); err != nil {
			return err
		}
	}

	g.manager.Render(g.batch)
	if g.paused {
		g.batch.DrawText(pauseBanner, 8, common.ViewportHeight/2)
		g.screen.Show()
	}
	return nil
}

// Run polls events on a separate goroutine and steps at the game's tick
// rate until the player quits or a frame fails.
func (g *Game) Run() error {
	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(g.screen, events, done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.Step(dt); err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
