package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-fitscube/cube"
)

func newShrinkCmd(a *app) *cobra.Command {
	var (
		hdu       int
		mfactor   int
		fixedSize bool
	)

	cmd := &cobra.Command{
		Use:   "shrink [flags] in.fits out.fits factor",
		Short: "Reduce the spatial resolution of an image cube",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return a.fail(errors.New("usage: fitscube shrink [--fixed] [--hdu n] [--mfactor m] in.fits out.fits factor"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return a.fail(fmt.Errorf("Shrink factor (%s) cannot be interpreted as a real number", args[2]))
			}

			cfg := a.cfg
			override(cmd.Flags(), "hdu", &cfg.Shrink.HDU, hdu)
			override(cmd.Flags(), "mfactor", &cfg.Shrink.MFactor, mfactor)
			override(cmd.Flags(), "fixed", &cfg.Shrink.FixedSize, fixedSize)

			res, err := cube.ShrinkCube(args[0], cfg.Shrink.HDU, args[1], factor,
				cfg.Shrink.MFactor, cfg.Shrink.FixedSize, a.libOptions()...)
			if err != nil {
				return a.fail(err)
			}
			return a.report(res)
		},
	}

	cmd.Flags().IntVar(&hdu, "hdu", 0, "0-based HDU to read")
	cmd.Flags().IntVarP(&mfactor, "mfactor", "m", 1, "third axis averaging factor")
	cmd.Flags().BoolVarP(&fixedSize, "fixed", "f", false, "drop a trailing partial output pixel")
	return cmd
}
