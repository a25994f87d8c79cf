package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-fitscube/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fitscube configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the --config file",
		Long: `Write the current settings to the --config file.

The file starts from the defaults, or from the existing file, with any global
flags such as --debug applied. An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return a.fail(fmt.Errorf("config file %s already exists; use --force to replace it", a.configPath))
			}
			if err := config.SaveConfig(a.cfg, a.configPath); err != nil {
				return a.fail(err)
			}
			fmt.Fprintf(a.stdout, "wrote %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
