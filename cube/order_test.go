package cube

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		name   string
		ctypes []string
		want   []int
	}{
		{"already spatial first", []string{"RA---TAN", "DEC--TAN", "FREQ"}, []int{1, 2, 3}},
		{"spectral first", []string{"FREQ", "RA---SIN", "DEC--SIN"}, []int{2, 3, 1}},
		{"galactic with stokes", []string{"GLON-CAR", "VELO-LSR", "GLAT-CAR", "STOKES"}, []int{1, 3, 2, 4}},
		{"latitude before longitude", []string{"ELAT", "ELON"}, []int{2, 1}},
		{"generic lon lat", []string{"", "LAT-CAR", "LON-CAR"}, []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOrder(tt.ctypes)
			if err != nil {
				t.Fatalf("ResolveOrder failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveOrderErrors(t *testing.T) {
	tests := []struct {
		name   string
		ctypes []string
		kind   error
	}{
		{"two longitudes", []string{"RA---TAN", "GLON-CAR", "DEC--TAN"}, ErrAmbiguousAxes},
		{"two latitudes", []string{"RA---TAN", "DEC--TAN", "GLAT-CAR"}, ErrAmbiguousAxes},
		{"no latitude", []string{"RA---TAN", "FREQ", ""}, ErrMissingSpatialAxes},
		{"no ctypes", []string{"", "", ""}, ErrMissingSpatialAxes},
		{"lower case is not recognized", []string{"ra---tan", "dec--tan", "FREQ"}, ErrMissingSpatialAxes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveOrder(tt.ctypes)
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected %v, got %v", tt.kind, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestResolveOrderFirstRepeatReported(t *testing.T) {
	tests := []struct {
		name   string
		ctypes []string
		want   string
	}{
		{"latitude repeats first", []string{"DEC--TAN", "RA---TAN", "DEC--TAN", "RA---TAN"}, "Multiple 'latitude' axes."},
		{"longitude repeats first", []string{"RA---TAN", "DEC--TAN", "RA---TAN", "DEC--TAN"}, "Multiple 'longitude' axes."},
		{"repeat before the other axis appears", []string{"GLAT-CAR", "GLAT-CAR", "GLON-CAR"}, "Multiple 'latitude' axes."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveOrder(tt.ctypes)
			if !errors.Is(err, ErrAmbiguousAxes) {
				t.Fatalf("expected ErrAmbiguousAxes, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("message = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []int
		n     int
		kind  error
		msg   string
	}{
		{"valid", []int{3, 1, 2}, 3, nil, ""},
		{"valid 4d", []int{4, 3, 2, 1}, 4, nil, ""},
		{"too short", []int{1, 2}, 3, ErrAxisCountMismatch,
			"Image has 3 dimensions.  You must list the output order for all of them."},
		{"out of range", []int{1, 4, 2}, 3, ErrAxisOutOfRange, "Axis ID 2 must be between 1 and 3."},
		{"negative", []int{-1, 2, 3}, 3, ErrAxisOutOfRange, "Axis ID 1 must be between 1 and 3."},
		{"duplicate", []int{1, 1, 2}, 3, ErrDuplicateAxis,
			"Output axis 2 is the same as axis 1. They must be unique."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.order, tt.n)
			if tt.kind == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.kind) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected %v and ErrValidation, got %v", tt.kind, err)
			}
			if err.Error() != tt.msg {
				t.Errorf("message %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}
