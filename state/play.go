package state

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/flappy/audio"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/entity"
	"github.com/milk9111/flappy/ecs/system"
	"github.com/milk9111/flappy/render"
)

// PlayState runs one session of the scrolling loop. Any collision replaces it
// with a fresh PlayState.
type PlayState struct {
	manager   *Manager
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
	textures  *render.Textures
	field     *entity.Playfield
	score     int
}

func NewPlayState(m *Manager) (*PlayState, error) {
	s := m.Session()
	if s.Spec == nil {
		return nil, fmt.Errorf("play: session has no prefabs")
	}

	rng := rand.New(rand.NewSource(s.Seed + int64(s.Runs)))
	s.Runs++
	placer := s.GapPlacer()

	world := ecs.NewWorld()
	textures := render.NewTextures()
	field, err := entity.BuildPlayfield(world, s.Spec, textures, func() float64 {
		return placer.TopY(rng.Float64())
	})
	if err != nil {
		textures.Dispose(m.Releaser())
		return nil, fmt.Errorf("play: build playfield: %w", err)
	}

	renderer := system.NewRenderSystem()
	renderer.Debug = s.Debug

	return &PlayState{
		manager: m,
		world:   world,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(s.Input),
			system.NewFlapSystem(),
			system.NewPhysicsSystem(),
			system.NewCameraSystem(),
			system.NewGroundSystem(),
			system.NewObstacleSystem(placer, rng.Float64),
			system.NewScoreSystem(),
			system.NewCollisionSystem(),
		),
		renderer: renderer,
		textures: textures,
		field:    field,
	}, nil
}

func (p *PlayState) Name() string { return "play" }

func (p *PlayState) Update(dt float64) error {
	p.scheduler.Update(p.world, dt)

	session := p.manager.Session()
	var hit *ecs.Event
	for _, ev := range p.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventFlap:
			session.play(audio.SoundFlap)
		case ecs.EventScore:
			if v, ok := ev.Data.(int); ok {
				p.score = v
			}
			session.play(audio.SoundScore)
		case ecs.EventHit:
			if hit == nil {
				hit = &ev
			}
		}
	}
	if hit == nil {
		return nil
	}

	// Passes made on the frame of the hit still count.
	session.play(audio.SoundHit)
	session.Record(p.score)
	log.Printf("play: hit %v on frame %d, score %d (best %d)", hit.Data, p.world.Frame(), p.score, session.Best)
	return p.manager.Restart()
}

func (p *PlayState) Render(batch render.Batch) {
	batch.Begin()
	p.renderer.Draw(p.world, batch)
	batch.DrawText(fmt.Sprintf("score %d  best %d", p.score, p.manager.Session().Best), 8, 8)
	batch.End()
}

// Dispose releases the textures of this session and empties its world.
func (p *PlayState) Dispose() {
	p.textures.Dispose(p.manager.Releaser())
	p.world.Clear()
}

func (p *PlayState) Score() int { return p.score }

func (p *PlayState) World() *ecs.World { return p.world }

func (p *PlayState) Playfield() *entity.Playfield { return p.field }
