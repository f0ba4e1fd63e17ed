package system

import "testing"

const gapSource = `
math := import("math")
top_y := math.floor(roll * fluctuation) + gap + lowest_opening
`

func TestFormulaGap(t *testing.T) {
	f := FormulaGap{Fluctuation: 130, Gap: 100, LowestOpening: 120}

	tests := []struct {
		roll float64
		want float64
	}{
		{roll: 0, want: 220},
		{roll: 0.5, want: 285},
		{roll: 0.999, want: 349},
	}
	for _, tc := range tests {
		if got := f.TopY(tc.roll); got != tc.want {
			t.Fatalf("roll %v: expected %v, got %v", tc.roll, tc.want, got)
		}
	}
}

func TestScriptGapMatchesFormula(t *testing.T) {
	f := FormulaGap{Fluctuation: 130, Gap: 100, LowestOpening: 120}
	s, err := NewScriptGap([]byte(gapSource), f)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	for _, roll := range []float64{0, 0.1, 0.5, 0.77, 0.999} {
		if got, want := s.TopY(roll), f.TopY(roll); got != want {
			t.Fatalf("roll %v: expected %v, got %v", roll, want, got)
		}
	}
}

func TestScriptGapFallsBack(t *testing.T) {
	f := FormulaGap{Fluctuation: 130, Gap: 100, LowestOpening: 120}

	tests := []struct {
		name string
		src  string
	}{
		{name: "missing result", src: `x := roll`},
		{name: "wrong type", src: `top_y := "high"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewScriptGap([]byte(tc.src), f)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := s.TopY(0.5); got != 285 {
				t.Fatalf("expected fallback 285, got %v", got)
			}
			if !s.warned {
				t.Fatalf("expected failure to be logged")
			}
		})
	}
}

func TestScriptGapCompileError(t *testing.T) {
	if _, err := NewScriptGap([]byte(`top_y := (`), FormulaGap{}); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestScriptGapIntegerResult(t *testing.T) {
	s, err := NewScriptGap([]byte(`top_y := 200`), FormulaGap{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := s.TopY(0.3); got != 200 {
		t.Fatalf("expected 200, got %v", got)
	}
}
