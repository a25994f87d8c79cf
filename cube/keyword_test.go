package cube

import (
	"testing"
)

func TestRemapKey(t *testing.T) {
	// Output axes 1, 2, 3 come from input axes 2, 3, 1.
	tc, err := NewTransform([]int{2, 3, 1}, []int{4, 5, 6})
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	tests := []struct {
		key    string
		want   string
		action Action
	}{
		{"CRVAL1", "CRVAL3", Rewrite},
		{"CRVAL2", "CRVAL1", Rewrite},
		{"CRPIX3", "CRPIX2", Rewrite},
		{"CTYPE2", "CTYPE1", Rewrite},
		{"CDELT1", "CDELT3", Rewrite},
		{"CUNIT3", "CUNIT2", Rewrite},
		{"CROTA2", "CROTA1", Rewrite},
		{"CD1_2", "CD3_1", Rewrite},
		{"PC2_3", "PC1_2", Rewrite},
		{"CTYPE4", "CTYPE4", Copy},
		{"CDELT0", "CDELT0", Copy},
		{"CD1_4", "CD1_4", Copy},
		{"CRVAL1A", "CRVAL1A", Copy},
		{"OBJECT", "OBJECT", Copy},
		{"COMMENT", "COMMENT", Copy},
		{"", "", Copy},
		{"SIMPLE", "", Drop},
		{"BITPIX", "", Drop},
		{"NAXIS", "", Drop},
		{"NAXIS2", "", Drop},
		{"NAXIS12", "", Drop},
		{"XTENSION", "", Drop},
		{"PCOUNT", "", Drop},
		{"GCOUNT", "", Drop},
		{"CHECKSUM", "", Drop},
		{"NAXISX", "NAXISX", Copy},
	}

	for _, tt := range tests {
		got, action := tc.RemapKey(tt.key)
		if got != tt.want || action != tt.action {
			t.Errorf("RemapKey(%q) = (%q, %v), want (%q, %v)", tt.key, got, action, tt.want, tt.action)
		}
	}
}

func TestRemapKeyTwoAxisRotation(t *testing.T) {
	tc, err := NewTransform([]int{2, 1}, []int{3, 4})
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	tests := []struct {
		key    string
		want   string
		action Action
	}{
		{"CROTA2", "CROTA2", Copy},
		{"CROTA1", "CROTA1", Copy},
		{"CRVAL2", "CRVAL1", Rewrite},
		{"CD1_2", "CD2_1", Rewrite},
	}
	for _, tt := range tests {
		got, action := tc.RemapKey(tt.key)
		if got != tt.want || action != tt.action {
			t.Errorf("RemapKey(%q) = (%q, %v), want (%q, %v)", tt.key, got, action, tt.want, tt.action)
		}
	}

	// Three axes get no exemption.
	tc3, _ := NewTransform([]int{2, 1, 3}, []int{3, 4, 5})
	if got, action := tc3.RemapKey("CROTA2"); got != "CROTA1" || action != Rewrite {
		t.Errorf("3-axis RemapKey(CROTA2) = (%q, %v), want (CROTA1, rewrite)", got, action)
	}
}

func TestRemapRecordKeepsValue(t *testing.T) {
	tc, _ := NewTransform([]int{3, 1, 2}, []int{2, 3, 4})
	rec := mustRecord(t, "CDELT3", -0.25, "spectral step")

	out, action, err := tc.remapRecord(rec)
	if err != nil {
		t.Fatalf("remapRecord failed: %v", err)
	}
	if action != Rewrite || out.Key != "CDELT1" {
		t.Fatalf("got (%s, %v), want (CDELT1, rewrite)", out.Key, action)
	}
	if out.Value != rec.Value || out.Comment != rec.Comment {
		t.Errorf("value or comment changed: %q / %q", out.Value, out.Comment)
	}
}
