package cube

import (
	"strings"

	"github.com/robert-malhotra/go-fitscube/internal/fits"
)

// Action is what happens to an input header record in the output.
type Action int

const (
	// Copy writes the record unchanged.
	Copy Action = iota
	// Rewrite writes the record under a renumbered keyword.
	Rewrite
	// Drop omits the record; the output writer generates its own.
	Drop
)

func (a Action) String() string {
	switch a {
	case Copy:
		return "copy"
	case Rewrite:
		return "rewrite"
	case Drop:
		return "drop"
	}
	return "unknown"
}

// axisTemplates are the WCS keywords indexed by axis. Each n stands for one
// axis digit.
var axisTemplates = []string{
	"CRVALn", "CRPIXn", "CTYPEn", "CDELTn", "CDn_n",
	"CROTAn", "CUNITn", "PCn_n",
}

// RemapKey classifies a header keyword and returns the keyword it is written
// under. Axis digits outside 1..Rank leave the keyword opaque. For 2-axis
// images CROTAn is copied unchanged, since CROTA2 is read as the rotation of
// the whole image.
func (tc *TransformContext) RemapKey(key string) (string, Action) {
	if structural(key) {
		return "", Drop
	}
	for _, tmpl := range axisTemplates {
		if tmpl == "CROTAn" && tc.Rank() == 2 {
			continue
		}
		if renamed, ok := tc.substitute(key, tmpl); ok {
			return renamed, Rewrite
		}
	}
	return key, Copy
}

func (tc *TransformContext) substitute(key, tmpl string) (string, bool) {
	if len(key) != len(tmpl) {
		return "", false
	}
	b := []byte(key)
	for j := range b {
		if tmpl[j] != 'n' {
			if b[j] != tmpl[j] {
				return "", false
			}
			continue
		}
		axis := int(b[j] - '1')
		if axis < 0 || axis >= tc.Rank() {
			return "", false
		}
		b[j] = byte('1' + tc.reorder[axis])
	}
	return string(b), true
}

// remapRecord applies RemapKey to a record.
func (tc *TransformContext) remapRecord(rec fits.Record) (fits.Record, Action, error) {
	key, action := tc.RemapKey(rec.Key)
	if action != Rewrite || key == rec.Key {
		return rec, action, nil
	}
	out, err := rec.WithKey(key)
	return out, action, err
}

// structural reports records that describe the data unit itself. The output
// writer emits its own, and checksums of the input no longer hold.
func structural(key string) bool {
	switch key {
	case "SIMPLE", "BITPIX", "NAXIS", "XTENSION", "PCOUNT", "GCOUNT", "CHECKSUM", "DATASUM":
		return true
	}
	if rest, ok := strings.CutPrefix(key, "NAXIS"); ok && rest != "" {
		return strings.Trim(rest, "0123456789") == ""
	}
	return false
}
