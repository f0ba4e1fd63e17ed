package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappy/audio"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
	"github.com/milk9111/flappy/state"
	"github.com/milk9111/flappy/term"
)

func main() {
	terminal := flag.Bool("term", false, "play in the terminal instead of a window")
	debug := flag.Bool("debug", false, "enable debug mode (FPS, collision boxes)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for tube gap placement")
	mute := flag.Bool("mute", false, "disable sound effects")
	watch := flag.Bool("watch", false, "reload prefabs from ./"+prefabs.Dir+" when they change")
	menu := flag.Bool("menu", true, "start on the menu instead of straight into play")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}

	session := &state.Session{
		Spec:  spec,
		Seed:  *seed,
		Debug: *debug,
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if *terminal {
		runTerminal(session, watcher, *menu, *mute)
		return
	}
	runWindow(session, watcher, *menu, *mute)
}

func start(m *state.Manager, menu bool) {
	if menu {
		m.Push(state.NewMenuState(m))
		return
	}
	p, err := state.NewPlayState(m)
	if err != nil {
		log.Fatal(err)
	}
	m.Push(p)
}

func runWindow(session *state.Session, watcher *prefabs.Watcher, menu, mute bool) {
	session.Input = NewInput()
	session.Sounds = audio.Mute{}
	if !mute {
		session.Sounds = audio.NewEbitenPlayer(audio.DefaultConfig())
	}

	batch := render.NewEbitenBatch()
	manager := state.NewManager(session, batch)
	defer manager.Dispose()
	start(manager, menu)

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("flappy")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(NewGame(manager, batch, watcher, session.Debug)); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(session *state.Session, watcher *prefabs.Watcher, menu, mute bool) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	input := &term.Input{}
	session.Input = input
	session.Sounds = audio.Mute{}
	if !mute {
		sm := audio.NewSoundManager(audio.DefaultConfig())
		if err := sm.Initialize(); err != nil {
			// The game runs without sound.
			log.Printf("audio initialization failed: %v", err)
		} else {
			session.Sounds = sm
			defer sm.Cleanup()
		}
	}

	batch := term.NewBatch(screen)
	manager := state.NewManager(session, batch)
	start(manager, menu)

	game := term.NewGame(screen, batch, manager, input)
	game.Watch(watcher)
	err = game.Run()
	manager.Dispose()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
