package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewContiguousInvalid(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
	}{
		{"empty", nil},
		{"zero extent", []int{4, 0, 2}},
		{"negative extent", []int{-1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewContiguous(0, tt.shape, 4); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestContiguousIndexAndOffset(t *testing.T) {
	c, err := NewContiguous(2880, []int{4, 3, 2}, 8)
	if err != nil {
		t.Fatalf("NewContiguous failed: %v", err)
	}

	if c.Len() != 24 || c.Lines() != 6 || c.LineLen() != 4 {
		t.Errorf("unexpected sizes: len=%d lines=%d lineLen=%d", c.Len(), c.Lines(), c.LineLen())
	}
	if c.Size() != 192 {
		t.Errorf("expected size 192, got %d", c.Size())
	}

	idx, err := c.Index([]int{1, 2, 1})
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if want := 1 + 2*4 + 1*12; idx != want {
		t.Errorf("expected index %d, got %d", want, idx)
	}

	off, err := c.Offset([]int{0, 1})
	if err != nil {
		t.Fatalf("Offset failed: %v", err)
	}
	if off != 2880+4*8 {
		t.Errorf("expected offset %d, got %d", 2880+4*8, off)
	}

	if _, err := c.Index([]int{4, 0, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := c.Index([]int{0, 0, 0, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for extra axis, got %v", err)
	}
}

func TestContiguousEachLine(t *testing.T) {
	c, err := NewContiguous(0, []int{5, 2, 3}, 4)
	if err != nil {
		t.Fatalf("NewContiguous failed: %v", err)
	}

	var got [][]int
	err = c.EachLine(func(coord []int) error {
		got = append(got, append([]int(nil), coord...))
		return nil
	})
	if err != nil {
		t.Fatalf("EachLine failed: %v", err)
	}

	want := [][]int{
		{0, 0, 0}, {0, 1, 0},
		{0, 0, 1}, {0, 1, 1},
		{0, 0, 2}, {0, 1, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("line order mismatch (-want +got):\n%s", diff)
	}

	// Consecutive lines are adjacent in storage.
	prev := int64(-1)
	c.EachLine(func(coord []int) error {
		off, _ := c.Offset(coord)
		if prev >= 0 && off != prev+int64(c.LineLen()*4) {
			t.Errorf("line at %v is not adjacent to the previous one", coord)
		}
		prev = off
		return nil
	})
}

func TestContiguousEachLineStops(t *testing.T) {
	c, _ := NewContiguous(0, []int{2, 4}, 1)
	stop := errors.New("stop")
	calls := 0
	err := c.EachLine(func(coord []int) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
