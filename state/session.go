package state

import (
	"log"

	"github.com/milk9111/flappy/audio"
	"github.com/milk9111/flappy/ecs/system"
	"github.com/milk9111/flappy/prefabs"
)

// Session is the process-lifetime context shared by every state.
type Session struct {
	Spec   *prefabs.GameSpec
	Seed   int64
	Input  system.InputSource
	Sounds audio.Player
	Debug  bool

	// Best is the highest score reached since the process started.
	Best int
	Last int
	// Runs counts play states created so far.
	Runs int

	gap system.GapPlacer
}

// Record stores the score of a finished run.
func (s *Session) Record(score int) {
	s.Last = score
	if score > s.Best {
		s.Best = score
	}
}

// SetSpec swaps in reloaded prefabs. The next play state uses them.
func (s *Session) SetSpec(spec *prefabs.GameSpec) {
	s.Spec = spec
	s.gap = nil
}

// GapPlacer returns the tube gap placer for the current spec. A gap script
// that does not compile is reported once and replaced by the formula.
func (s *Session) GapPlacer() system.GapPlacer {
	if s.gap != nil {
		return s.gap
	}
	tube := s.Spec.Tube
	formula := system.FormulaGap{
		Fluctuation:   tube.Fluctuation,
		Gap:           tube.Gap,
		LowestOpening: tube.LowestOpening,
	}
	s.gap = formula
	if len(s.Spec.GapSource) == 0 {
		return s.gap
	}
	script, err := system.NewScriptGap(s.Spec.GapSource, formula)
	if err != nil {
		log.Printf("play: %s: %v; using formula", tube.GapScript, err)
		return s.gap
	}
	s.gap = script
	return s.gap
}

func (s *Session) play(sound audio.Sound) {
	if s.Sounds != nil {
		s.Sounds.Play(sound)
	}
}
