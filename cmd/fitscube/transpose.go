package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-fitscube/cube"
)

func newTransposeCmd(a *app) *cobra.Command {
	var (
		order []int
		hdu   int
		jobs  int
	)

	cmd := &cobra.Command{
		Use:   "transpose [flags] in.fits out.fits [in.fits out.fits ...]",
		Short: "Reorder the axes of one or more image cubes",
		Long: `Reorder the axes of one or more image cubes.

Without --order the longitude and latitude axes named by CTYPEn are moved to
the front and the remaining axes follow in their original order. With several
input/output pairs the files are processed concurrently.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args)%2 != 0 {
				return a.fail(errors.New("usage: fitscube transpose [--order a,b,c] in.fits out.fits [in.fits out.fits ...]"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			override(cmd.Flags(), "order", &cfg.Transpose.Order, order)
			override(cmd.Flags(), "hdu", &cfg.Transpose.HDU, hdu)
			override(cmd.Flags(), "jobs", &cfg.Transpose.Jobs, jobs)

			opts := append(a.libOptions(), cube.WithHDU(cfg.Transpose.HDU))
			if len(cfg.Transpose.Order) > 0 {
				opts = append(opts, cube.WithAxisOrder(cfg.Transpose.Order...))
			}

			var batch []cube.Job
			for i := 0; i < len(args); i += 2 {
				batch = append(batch, cube.Job{Input: args[i], Output: args[i+1]})
			}

			results, err := cube.TransposeAll(cmd.Context(), batch, cfg.Transpose.Jobs, opts...)
			for _, res := range results {
				if res != nil {
					a.report(res)
				}
			}
			if err != nil {
				return a.fail(err)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&order, "order", "o", nil, "output axis order, e.g. 3,1,2")
	cmd.Flags().IntVar(&hdu, "hdu", 0, "0-based HDU to read")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files transposed at once (default from config)")
	return cmd
}
