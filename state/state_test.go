package state

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/milk9111/flappy/audio"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/ecs/system"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
)

type fakeInput struct {
	presses []bool
}

func (f *fakeInput) JustTouched() bool {
	if len(f.presses) == 0 {
		return false
	}
	p := f.presses[0]
	f.presses = f.presses[1:]
	return p
}

type soundLog struct {
	played []audio.Sound
}

func (s *soundLog) Play(sound audio.Sound) {
	s.played = append(s.played, sound)
}

func (s *soundLog) count(sound audio.Sound) int {
	n := 0
	for _, p := range s.played {
		if p == sound {
			n++
		}
	}
	return n
}

type fakeState struct {
	name     string
	updates  int
	renders  int
	disposed bool
	err      error
}

func (f *fakeState) Update(dt float64) error {
	f.updates++
	return f.err
}
func (f *fakeState) Render(render.Batch) { f.renders++ }
func (f *fakeState) Dispose()            { f.disposed = true }
func (f *fakeState) Name() string        { return f.name }

func loadSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	return spec
}

func newTestManager(t *testing.T, input *fakeInput) (*Manager, *soundLog, *render.Recorder) {
	t.Helper()
	sounds := &soundLog{}
	rec := &render.Recorder{}
	session := &Session{Spec: loadSpec(t), Seed: 7, Input: input, Sounds: sounds}
	return NewManager(session, rec), sounds, rec
}

func newPlay(t *testing.T, m *Manager) *PlayState {
	t.Helper()
	p, err := NewPlayState(m)
	if err != nil {
		t.Fatalf("NewPlayState: %v", err)
	}
	m.Push(p)
	return p
}

func TestManagerStack(t *testing.T) {
	m := NewManager(nil, nil)
	if err := m.Update(1.0 / 60); !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("expected ErrEmptyStack, got %v", err)
	}

	a := &fakeState{name: "a"}
	b := &fakeState{name: "b"}
	c := &fakeState{name: "c"}
	m.Push(a)
	m.Push(b)

	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	m.Render(&render.Recorder{})
	if a.updates != 0 || b.updates != 1 || b.renders != 1 {
		t.Fatalf("expected only the top state to run, got a=%d b=%d/%d", a.updates, b.updates, b.renders)
	}

	m.Set(c)
	if !b.disposed || m.Current() != c || m.Len() != 2 {
		t.Fatalf("expected b replaced by c, current=%v len=%d", m.Current(), m.Len())
	}

	m.Pop()
	if !c.disposed || m.Current() != a {
		t.Fatalf("expected a on top after pop")
	}

	m.Dispose()
	if !a.disposed || m.Len() != 0 {
		t.Fatalf("expected every state disposed")
	}
	m.Pop()
}

func TestManagerWrapsStateError(t *testing.T) {
	boom := errors.New("boom")
	m := NewManager(nil, nil)
	m.Push(&fakeState{name: "broken", err: boom})

	err := m.Update(0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("expected state name in error, got %q", err)
	}
}

func TestNewPlayStateLayout(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeInput{})
	p := newPlay(t, m)
	w := p.World()
	field := p.Playfield()

	bird, _ := ecs.Get(w, field.Bird, component.TransformComponent.Kind())
	if bird.X != 50 || bird.Y != 200 {
		t.Fatalf("expected bird at (50,200), got (%v,%v)", bird.X, bird.Y)
	}

	if len(field.Tubes) != 4 {
		t.Fatalf("expected 4 tubes, got %d", len(field.Tubes))
	}
	for i, e := range field.Tubes {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		o, _ := ecs.Get(w, e, component.ObstacleComponent.Kind())
		if want := 300 + float64(i)*(52+125); tr.X != want {
			t.Fatalf("tube %d: expected x %v, got %v", i, want, tr.X)
		}
		if o.TopY < 220 || o.TopY >= 350 {
			t.Fatalf("tube %d: top %v outside [220,350)", i, o.TopY)
		}
		if o.BottomY != o.TopY-100-320 {
			t.Fatalf("tube %d: bottom %v does not keep the gap", i, o.BottomY)
		}
	}

	for i, e := range field.Ground {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if want := float64(i) * 336; tr.X != want || tr.Y != -50 {
			t.Fatalf("ground %d: expected (%v,-50), got (%v,%v)", i, want, tr.X, tr.Y)
		}
	}

	if m.Session().Runs != 1 {
		t.Fatalf("expected one run, got %d", m.Session().Runs)
	}
}

func TestSameSeedSameTubes(t *testing.T) {
	tops := func() []float64 {
		m, _, _ := newTestManager(t, &fakeInput{})
		p := newPlay(t, m)
		var out []float64
		for _, e := range p.Playfield().Tubes {
			o, _ := ecs.Get(p.World(), e, component.ObstacleComponent.Kind())
			out = append(out, o.TopY)
		}
		return out
	}
	if a, b := tops(), tops(); !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical layouts, got %v and %v", a, b)
	}
}

func TestFallingBirdResetsSession(t *testing.T) {
	m, sounds, rec := newTestManager(t, &fakeInput{})
	p := newPlay(t, m)

	for i := 0; i < 120 && m.Current() == State(p); i++ {
		if err := m.Update(1.0 / 60); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	next, ok := m.Current().(*PlayState)
	if !ok || next == p {
		t.Fatalf("expected a fresh play state after hitting the ground")
	}
	if m.Len() != 1 {
		t.Fatalf("expected the old state to be replaced, stack len %d", m.Len())
	}
	if sounds.count(audio.SoundHit) != 1 {
		t.Fatalf("expected one hit sound, got %v", sounds.played)
	}
	if len(rec.Released) == 0 {
		t.Fatalf("expected textures of the old state to be released")
	}
	if p.World().Count(component.BirdTagComponent.Kind()) != 0 {
		t.Fatalf("expected old world to be cleared")
	}
	if m.Session().Runs != 2 || next.Score() != 0 {
		t.Fatalf("expected second run starting at zero, runs=%d score=%d", m.Session().Runs, next.Score())
	}

	bird, _ := ecs.Get(next.World(), next.Playfield().Bird, component.TransformComponent.Kind())
	if bird.X != 50 || bird.Y != 200 {
		t.Fatalf("expected reset bird at (50,200), got (%v,%v)", bird.X, bird.Y)
	}
}

func TestTapMakesBirdJump(t *testing.T) {
	m, sounds, _ := newTestManager(t, &fakeInput{presses: []bool{true}})
	p := newPlay(t, m)

	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	bird, _ := ecs.Get(p.World(), p.Playfield().Bird, component.TransformComponent.Kind())
	if bird.Y <= 200 {
		t.Fatalf("expected bird to rise, y=%v", bird.Y)
	}
	if sounds.count(audio.SoundFlap) != 1 {
		t.Fatalf("expected a flap sound, got %v", sounds.played)
	}
}

func TestPassingTubeScores(t *testing.T) {
	m, sounds, _ := newTestManager(t, &fakeInput{})
	p := newPlay(t, m)

	bird, _ := ecs.Get(p.World(), p.Playfield().Bird, component.TransformComponent.Kind())
	bird.X = 360

	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Current() != State(p) {
		t.Fatalf("expected no reset between tubes")
	}
	if p.Score() != 1 {
		t.Fatalf("expected score 1, got %d", p.Score())
	}
	if sounds.count(audio.SoundScore) != 1 {
		t.Fatalf("expected a score sound, got %v", sounds.played)
	}
}

func TestPlayRender(t *testing.T) {
	m, _, rec := newTestManager(t, &fakeInput{})
	m.Session().Best = 3
	newPlay(t, m)

	m.Render(rec)

	got := rec.Textures()
	want := []string{"bg", "bird"}
	if len(got) < 2 || !reflect.DeepEqual(got[:2], want) {
		t.Fatalf("expected background then bird first, got %v", got)
	}
	last := rec.Calls[len(rec.Calls)-1]
	if last.Kind != "text" || last.Text != "score 0  best 3" {
		t.Fatalf("expected score HUD last, got %+v", last)
	}
	if rec.Frames != 1 {
		t.Fatalf("expected one frame, got %d", rec.Frames)
	}
}

func TestMenuStartsPlay(t *testing.T) {
	input := &fakeInput{presses: []bool{false, true}}
	m, _, rec := newTestManager(t, input)
	menu := NewMenuState(m)
	m.Push(menu)

	m.Render(rec)
	if got := rec.Textures(); !reflect.DeepEqual(got, []string{"bg", "play_button"}) {
		t.Fatalf("unexpected menu draw calls %v", got)
	}
	if c := rec.Calls[1]; c.X != 120-52 || c.Y != 200-29 {
		t.Fatalf("expected centred button, got (%v,%v)", c.X, c.Y)
	}

	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Current() != State(menu) {
		t.Fatalf("expected menu to stay without a tap")
	}

	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, ok := m.Current().(*PlayState); !ok {
		t.Fatalf("expected play state after tap, got %T", m.Current())
	}
	if m.Len() != 1 {
		t.Fatalf("expected menu replaced, stack len %d", m.Len())
	}
}

func TestSessionRecord(t *testing.T) {
	s := &Session{}
	for _, score := range []int{2, 5, 1} {
		s.Record(score)
	}
	if s.Best != 5 || s.Last != 1 {
		t.Fatalf("expected best 5 last 1, got %d %d", s.Best, s.Last)
	}
}

func TestBrokenGapScriptFallsBack(t *testing.T) {
	spec := loadSpec(t)
	spec.GapSource = []byte("top_y := (")
	s := &Session{Spec: spec}

	if got := s.GapPlacer().TopY(0); got != 220 {
		t.Fatalf("expected formula placement 220, got %v", got)
	}

	s.SetSpec(loadSpec(t))
	if got := s.GapPlacer().TopY(0.5); got != 285 {
		t.Fatalf("expected scripted placement 285, got %v", got)
	}
}

func TestReloadRestartsWithFreshSpec(t *testing.T) {
	t.Chdir(t.TempDir())
	m, _, rec := newTestManager(t, &fakeInput{})

	broken := loadSpec(t)
	broken.GapSource = []byte("top_y := (")
	m.Session().SetSpec(broken)
	p := newPlay(t, m)
	if _, ok := m.Session().GapPlacer().(system.FormulaGap); !ok {
		t.Fatalf("expected formula placement before reload")
	}

	if err := m.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	next, ok := m.Current().(*PlayState)
	if !ok || next == p || m.Len() != 1 {
		t.Fatalf("expected a fresh play state replacing the old one, len %d", m.Len())
	}
	if m.Session().Spec == broken {
		t.Fatalf("expected reloaded spec to replace the running one")
	}
	if _, ok := m.Session().GapPlacer().(*system.ScriptGap); !ok {
		t.Fatalf("expected the cached gap placer to be rebuilt from the script")
	}
	if len(rec.Released) == 0 {
		t.Fatalf("expected textures of the old state to be released")
	}
}

func TestReloadKeepsRunningSpecOnBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	m, _, _ := newTestManager(t, &fakeInput{})
	p := newPlay(t, m)
	spec := m.Session().Spec

	if err := os.MkdirAll(filepath.Join(dir, prefabs.Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	bad := []byte("sprite: [unclosed\n")
	if err := os.WriteFile(filepath.Join(dir, prefabs.Dir, "bird.yaml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := m.Reload(); err == nil {
		t.Fatalf("expected reload to fail on a broken prefab")
	}
	if m.Session().Spec != spec {
		t.Fatalf("expected the running spec to be kept")
	}
	if m.Current() != State(p) {
		t.Fatalf("expected the running play state to be kept")
	}
	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update after failed reload: %v", err)
	}
}

func TestHitOnScoringFrameKeepsPass(t *testing.T) {
	m, sounds, _ := newTestManager(t, &fakeInput{})
	p := newPlay(t, m)

	bird, _ := ecs.Get(p.World(), p.Playfield().Bird, component.TransformComponent.Kind())
	bird.X = 360
	bird.Y = 10

	if err := m.Update(1.0 / 60); err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Current() == State(p) {
		t.Fatalf("expected the ground hit to restart play")
	}
	if s := m.Session(); s.Last != 1 || s.Best != 1 {
		t.Fatalf("expected the pass to be recorded, last=%d best=%d", s.Last, s.Best)
	}
	if sounds.count(audio.SoundScore) != 1 || sounds.count(audio.SoundHit) != 1 {
		t.Fatalf("expected one score and one hit sound, got %v", sounds.played)
	}
}
