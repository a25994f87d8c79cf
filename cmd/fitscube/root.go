package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-fitscube/cube"
	"github.com/robert-malhotra/go-fitscube/internal/config"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath   string
	statusPath   string
	statusFormat string
	debug      int
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "fitscube",
		Short:         "Reorder and resample FITS image cubes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "fitscube.yaml", "YAML configuration file")
	flags.StringVarP(&a.statusPath, "status", "s", "", "write the status line to this file instead of stdout")
	flags.StringVar(&a.statusFormat, "status-format", "text", "status output format: text (one line) or yaml")
	flags.IntVarP(&a.debug, "debug", "d", 0, "diagnostic level (0-3)")
	flags.StringVar(&a.logFormat, "log-format", "text", "diagnostic log format: text or json")

	root.AddCommand(newTransposeCmd(a), newShrinkCmd(a), newInfoCmd(a), newConfigCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.statusFormat != "text" && a.statusFormat != "yaml" {
		err := fmt.Errorf("status format must be text or yaml, got %q", a.statusFormat)
		a.statusFormat = "text"
		return a.fail(err)
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return a.fail(err)
	}

	flags := cmd.Flags()
	override(flags, "debug", &cfg.Log.Debug, a.debug)
	override(flags, "log-format", &cfg.Log.Format, a.logFormat)
	if err := cfg.Validate(); err != nil {
		return a.fail(err)
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Log.Debug > 0 {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		a.logger = slog.New(slog.NewJSONHandler(a.stderr, opts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(a.stderr, opts))
	}
	return nil
}

// report writes res as a status line, or as a YAML document with
// --status-format yaml.
func (a *app) report(res *cube.Result) error {
	w := a.stdout
	if a.statusPath != "" {
		f, err := os.OpenFile(a.statusPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(a.stdout, "[struct stat=\"ERROR\", msg=\"Cannot open status file: %s\"]\n", a.statusPath)
			return err
		}
		defer f.Close()
		w = f
	}

	if a.statusFormat == "yaml" {
		doc, err := res.YAML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", doc)
		return err
	}
	_, err := fmt.Fprintln(w, res)
	return err
}

// fail reports err as an ERROR status and returns it.
func (a *app) fail(err error) error {
	a.report(cube.ErrorResult(err))
	return err
}

// libOptions returns the options shared by every library call.
func (a *app) libOptions() []cube.Option {
	return []cube.Option{
		cube.WithDebug(a.cfg.Log.Debug),
		cube.WithLogger(a.logger),
	}
}

// override replaces a configured value with the flag value when the flag was
// given on the command line.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}
