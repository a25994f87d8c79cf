package cube

import (
	"strings"

	"github.com/samber/lo"
)

// CTYPE prefixes of celestial longitude and latitude axes.
var (
	longitudePrefixes = []string{"RA--", "GLON", "ELON", "LON-"}
	latitudePrefixes  = []string{"DEC-", "GLAT", "ELAT", "LAT-"}
)

// ResolveOrder derives the default output order from the CTYPEn values of
// an image, ctypes[0] being CTYPE1. Absent keywords are passed as "". The
// longitude axis comes first, the latitude axis second and the remaining
// axes follow in their original order. Axes are scanned from CTYPE1, so the
// first repeated longitude or latitude axis met is the one reported.
func ResolveOrder(ctypes []string) ([]int, error) {
	lon, lat := -1, -1
	for i, ctype := range ctypes {
		if hasAnyPrefix(ctype, longitudePrefixes) {
			if lon >= 0 {
				return nil, invalid(ErrAmbiguousAxes, "Multiple 'longitude' axes.")
			}
			lon = i
		}
		if hasAnyPrefix(ctype, latitudePrefixes) {
			if lat >= 0 {
				return nil, invalid(ErrAmbiguousAxes, "Multiple 'latitude' axes.")
			}
			lat = i
		}
	}
	if lon < 0 || lat < 0 {
		return nil, invalid(ErrMissingSpatialAxes, "Need both longitude and latitude axes.")
	}

	order := append([]int{lon, lat}, lo.Without(lo.Range(len(ctypes)), lon, lat)...)
	return lo.Map(order, func(axis, _ int) int { return axis + 1 }), nil
}

// ValidateOrder checks an explicit order against an image with n axes.
func ValidateOrder(order []int, n int) error {
	if len(order) != n {
		return invalid(ErrAxisCountMismatch,
			"Image has %d dimensions.  You must list the output order for all of them.", n)
	}
	for i, axis := range order {
		if axis < 1 || axis > n {
			return invalid(ErrAxisOutOfRange, "Axis ID %d must be between 1 and %d.", i+1, n)
		}
	}
	for i, axis := range order {
		if j := lo.IndexOf(order[:i], axis); j >= 0 {
			return invalid(ErrDuplicateAxis,
				"Output axis %d is the same as axis %d. They must be unique.", i+1, j+1)
		}
	}
	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	return lo.ContainsBy(prefixes, func(p string) bool { return strings.HasPrefix(s, p) })
}
