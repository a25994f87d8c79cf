package cube

import (
	"math"
	"testing"
)

func TestTracker(t *testing.T) {
	var tr Tracker
	if _, _, ok := tr.Extrema(); ok {
		t.Fatal("empty tracker reported extrema")
	}

	tr.Observe(math.NaN())
	if _, _, ok := tr.Extrema(); ok {
		t.Fatal("NaN counted as a valid pixel")
	}

	for _, v := range []float64{3, -2.5, math.NaN(), 7, 0} {
		tr.Observe(v)
	}
	min, max, ok := tr.Extrema()
	if !ok || min != -2.5 || max != 7 {
		t.Errorf("Extrema = (%v, %v, %v), want (-2.5, 7, true)", min, max, ok)
	}
	if tr.Count() != 4 {
		t.Errorf("Count = %d, want 4", tr.Count())
	}
}

func TestTrackerSingleValue(t *testing.T) {
	var tr Tracker
	tr.Observe(-4)
	min, max, ok := tr.Extrema()
	if !ok || min != -4 || max != -4 {
		t.Errorf("Extrema = (%v, %v, %v), want (-4, -4, true)", min, max, ok)
	}
}
