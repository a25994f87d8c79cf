// Package cube reorders the axes of FITS image cubes.
//
// Transpose reads a 2-, 3- or 4-axis image one line at a time, scatters every
// pixel into its position in a fully materialized output cube, and writes the
// output with its axis-indexed WCS keywords renumbered to match. When no
// order is given, the longitude and latitude axes named by the CTYPEn
// keywords are moved to the front:
//
//	res, err := cube.Transpose("in.fits", "out.fits")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res) // [struct stat="OK", mindata=0, maxdata=12.5]
//
// An explicit order lists, for each output axis, the 1-based input axis that
// supplies it:
//
//	res, err := cube.Transpose("in.fits", "out.fits", cube.WithAxisOrder(3, 1, 2))
//
// ShrinkCube is the companion resampler. It shares the Result record and the
// file handling but not the transform.
package cube
