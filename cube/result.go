package cube

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Status is the outcome of a call.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "ERROR"
)

// Result is the record returned to callers of Transpose and ShrinkCube.
type Result struct {
	Status Status `yaml:"status"`

	// Message is a summary on success and the diagnostic on error.
	Message string `yaml:"msg"`

	// JSON is a machine-readable rendering of the summary.
	JSON string `yaml:"json,omitempty"`

	// Min and Max are the extrema of the valid output pixels. Both are nil
	// when the cube has no valid pixels.
	Min *float64 `yaml:"mindata,omitempty"`
	Max *float64 `yaml:"maxdata,omitempty"`
}

func newResult(t *Tracker) (*Result, error) {
	min, max, ok := t.Extrema()
	if !ok {
		return &Result{Status: StatusOK, Message: "no valid pixels", JSON: `{"mindata":null,"maxdata":null}`}, nil
	}

	summary, err := json.Marshal(struct {
		Min extremum `json:"mindata"`
		Max extremum `json:"maxdata"`
	}{extremum(min), extremum(max)})
	if err != nil {
		return nil, fmt.Errorf("rendering result summary: %w", err)
	}

	return &Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("mindata=%s, maxdata=%s", formatG(min), formatG(max)),
		JSON:    string(summary),
		Min:     &min,
		Max:     &max,
	}, nil
}

// extremum is a pixel value in the JSON summary. Infinite values have no
// JSON number form and are written as the strings "+Inf" and "-Inf".
type extremum float64

func (e extremum) MarshalJSON() ([]byte, error) {
	v := float64(e)
	if math.IsInf(v, 0) {
		return json.Marshal(formatG(v))
	}
	return json.Marshal(v)
}

// ErrorResult converts an error into a failed Result.
func ErrorResult(err error) *Result {
	return &Result{Status: StatusError, Message: err.Error()}
}

// OK reports whether the call succeeded.
func (r *Result) OK() bool {
	return r.Status == StatusOK
}

// Extrema returns the minimum and maximum valid pixel values.
func (r *Result) Extrema() (min, max float64, err error) {
	if !r.OK() {
		return 0, 0, errors.New(r.Message)
	}
	if r.Min == nil || r.Max == nil {
		return 0, 0, ErrNoValidPixels
	}
	return *r.Min, *r.Max, nil
}

// quoteEscaper keeps an error message inside the quotes of its status line.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// String renders the status line written by the command-line tools. Quotes
// and backslashes in an error message are escaped.
func (r *Result) String() string {
	if !r.OK() {
		return fmt.Sprintf("[struct stat=\"ERROR\", msg=\"%s\"]", quoteEscaper.Replace(r.Message))
	}
	return fmt.Sprintf("[struct stat=\"OK\", %s]", r.Message)
}

// YAML renders the whole record.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

func formatG(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
