package cube

import "math"

// Tracker accumulates the extrema of the valid pixels it observes. NaN marks
// a missing pixel and is ignored. The zero value is ready to use.
type Tracker struct {
	min, max float64
	count    int
}

// Observe records one pixel value.
func (t *Tracker) Observe(v float64) {
	if math.IsNaN(v) {
		return
	}
	if t.count == 0 {
		t.min, t.max = v, v
	} else if v < t.min {
		t.min = v
	} else if v > t.max {
		t.max = v
	}
	t.count++
}

// Count returns the number of valid pixels observed.
func (t *Tracker) Count() int {
	return t.count
}

// Extrema returns the minimum and maximum. ok is false until a valid pixel
// has been observed.
func (t *Tracker) Extrema() (min, max float64, ok bool) {
	return t.min, t.max, t.count > 0
}
