package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// GapPlacer picks where the top tube of a pair starts, given a roll in [0, 1).
type GapPlacer interface {
	TopY(roll float64) float64
}

// FormulaGap places the opening between LowestOpening+Gap and
// LowestOpening+Gap+Fluctuation in whole units.
type FormulaGap struct {
	Fluctuation   float64
	Gap           float64
	LowestOpening float64
}

func (f FormulaGap) TopY(roll float64) float64 {
	return math.Floor(roll*f.Fluctuation) + f.Gap + f.LowestOpening
}

// ScriptGap runs a Tengo script for every placement. The script reads roll,
// fluctuation, gap and lowest_opening and must assign top_y. Any failure
// falls back to the formula.
type ScriptGap struct {
	compiled *tengo.Compiled
	fallback FormulaGap
	warned   bool
}

func NewScriptGap(src []byte, fallback FormulaGap) (*ScriptGap, error) {
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0.0)
	_ = script.Add("fluctuation", fallback.Fluctuation)
	_ = script.Add("gap", fallback.Gap)
	_ = script.Add("lowest_opening", fallback.LowestOpening)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("gap script: compile: %w", err)
	}
	return &ScriptGap{compiled: compiled, fallback: fallback}, nil
}

func (s *ScriptGap) TopY(roll float64) float64 {
	y, err := s.run(roll)
	if err != nil {
		if !s.warned {
			log.Printf("gap script: %v; using formula", err)
			s.warned = true
		}
		return s.fallback.TopY(roll)
	}
	return y
}

func (s *ScriptGap) run(roll float64) (float64, error) {
	if s == nil || s.compiled == nil {
		return 0, fmt.Errorf("nil script")
	}
	if err := s.compiled.Set("roll", roll); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}
	if !s.compiled.IsDefined("top_y") {
		return 0, fmt.Errorf("top_y is not assigned")
	}
	v := s.compiled.Get("top_y")
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("top_y has type %s", v.ValueType())
	}
}
