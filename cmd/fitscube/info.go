package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-fitscube/internal/fits"
)

func newInfoCmd(a *app) *cobra.Command {
	var records bool

	cmd := &cobra.Command{
		Use:   "info [flags] file.fits",
		Short: "List the HDUs of a FITS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := describe(a.stdout, args[0], records); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&records, "records", "r", false, "print every header record")
	return cmd
}

// describe prints one block per HDU of the file at path.
func describe(w io.Writer, path string, records bool) error {
	f, err := fits.Open(path)
	if err != nil {
		return fmt.Errorf("Input image file %s missing or invalid FITS: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(w, "=== Analyzing %s ===\n\n", f.Path())
	for i := 0; i < f.NumHDU(); i++ {
		img, err := f.HDU(i)
		if err != nil {
			return err
		}
		hdr := img.Header()

		fmt.Fprintf(w, "HDU %d:\n", i)
		if err := img.Err(); err != nil {
			fmt.Fprintf(w, "  No image data: %v\n", err)
		} else {
			fmt.Fprintf(w, "  BITPIX: %d (%s)\n", img.Bitpix(), img.Bitpix())
			fmt.Fprintf(w, "  Axes:   %v\n", img.Axes())
			for n, axis := range img.Axes() {
				if ctype, err := hdr.String(fmt.Sprintf("CTYPE%d", n+1)); err == nil {
					fmt.Fprintf(w, "  CTYPE%d: %s (%d pixels)\n", n+1, ctype, axis)
				}
			}
		}
		fmt.Fprintf(w, "  Records: %d\n", hdr.Len())

		if records {
			for _, rec := range hdr.Records() {
				fmt.Fprintf(w, "    %s\n", rec)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
