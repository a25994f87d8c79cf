// Command fitscube transposes and shrinks FITS image cubes.
//
// Every run ends with a status line on stdout, or in the file named by
// --status:
//
//	[struct stat="OK", mindata=-0.25, maxdata=17.5]
//	[struct stat="ERROR", msg="Multiple 'longitude' axes."]
//
// The exit code is 1 when the status is ERROR.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
