package cube

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestResultSuccess(t *testing.T) {
	var tr Tracker
	tr.Observe(-1.5)
	tr.Observe(1e-7)
	tr.Observe(42)

	res, err := newResult(&tr)
	if err != nil {
		t.Fatalf("newResult failed: %v", err)
	}
	if !res.OK() {
		t.Fatal("expected OK status")
	}
	if want := `[struct stat="OK", mindata=-1.5, maxdata=42]`; res.String() != want {
		t.Errorf("String = %q, want %q", res.String(), want)
	}
	if want := `{"mindata":-1.5,"maxdata":42}`; res.JSON != want {
		t.Errorf("JSON = %q, want %q", res.JSON, want)
	}

	min, max, err := res.Extrema()
	if err != nil || min != -1.5 || max != 42 {
		t.Errorf("Extrema = (%v, %v, %v)", min, max, err)
	}

	y, err := res.YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	for _, want := range []string{"status: OK", "mindata: -1.5", "maxdata: 42"} {
		if !strings.Contains(string(y), want) {
			t.Errorf("YAML missing %q:\n%s", want, y)
		}
	}
}

func TestResultNoValidPixels(t *testing.T) {
	res, err := newResult(&Tracker{})
	if err != nil {
		t.Fatalf("newResult failed: %v", err)
	}
	if !res.OK() {
		t.Fatal("expected OK status")
	}
	if res.Min != nil || res.Max != nil {
		t.Error("extrema set for an empty cube")
	}
	if _, _, err := res.Extrema(); !errors.Is(err, ErrNoValidPixels) {
		t.Errorf("expected ErrNoValidPixels, got %v", err)
	}
}

func TestErrorResult(t *testing.T) {
	err := ValidateOrder([]int{1, 1, 2}, 3)
	res := ErrorResult(err)
	if res.OK() {
		t.Fatal("expected ERROR status")
	}
	want := `[struct stat="ERROR", msg="Output axis 2 is the same as axis 1. They must be unique."]`
	if res.String() != want {
		t.Errorf("String = %q, want %q", res.String(), want)
	}
	if _, _, err := res.Extrema(); err == nil {
		t.Error("expected error from a failed result")
	}
}

func TestResultInfiniteExtrema(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMsg  string
		wantJSON string
	}{
		{"positive", []float64{0, math.Inf(1), 3}, "mindata=0, maxdata=+Inf", `{"mindata":0,"maxdata":"+Inf"}`},
		{"negative", []float64{math.Inf(-1), 2}, "mindata=-Inf, maxdata=2", `{"mindata":"-Inf","maxdata":2}`},
		{"both", []float64{math.Inf(1), math.Inf(-1)}, "mindata=-Inf, maxdata=+Inf", `{"mindata":"-Inf","maxdata":"+Inf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			for _, v := range tt.values {
				tr.Observe(v)
			}
			res, err := newResult(&tr)
			if err != nil {
				t.Fatalf("newResult failed: %v", err)
			}
			if res.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", res.Message, tt.wantMsg)
			}
			if res.JSON != tt.wantJSON {
				t.Errorf("JSON = %q, want %q", res.JSON, tt.wantJSON)
			}
		})
	}
}

func TestErrorResultEscapesQuotes(t *testing.T) {
	res := ErrorResult(errors.New(`open "a\b.fits": no such file`))
	want := `[struct stat="ERROR", msg="open \"a\\b.fits\": no such file"]`
	if res.String() != want {
		t.Errorf("String = %q, want %q", res.String(), want)
	}
	if res.Message != `open "a\b.fits": no such file` {
		t.Errorf("Message changed to %q", res.Message)
	}
}
