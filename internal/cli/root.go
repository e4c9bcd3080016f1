// Package cli provides the colormath command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kovidgoyal/colormath"
)

const logLevelEnv = "COLORMATH_LOG_LEVEL"

type options struct {
	output   string
	logLevel string
	verbose  bool
}

// app holds the state shared by all commands of one invocation.
type app struct {
	opts   options
	logger hclog.Logger
}

func (a *app) setupLogger(w io.Writer) error {
	level := hclog.LevelFromString(a.opts.logLevel)
	if level == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %q", a.opts.logLevel)
	}
	if a.opts.verbose {
		level = hclog.Debug
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colormath",
		Output: w,
		Level:  level,
	})
	return nil
}

func (a *app) checkOutput() error {
	switch a.opts.output {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("invalid output format %q, must be one of: text, json", a.opts.output)
}

func defaultLogLevel() string {
	if v := strings.TrimSpace(os.Getenv(logLevelEnv)); v != "" {
		return v
	}
	return "warn"
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}
	root := &cobra.Command{
		Use:   "colormath",
		Short: "Color science calculations",
		Long: `colormath converts between RGB, HSV, CIE xy and XYZ, computes the correlated
color temperature and tint of a chromaticity (and back), and builds Bradford
chromatic adaptation matrices between white points.`,
		Version:       colormath.Version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkOutput(); err != nil {
				return err
			}
			if err := a.setupLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				a.logger.Trace("flag set", "name", f.Name, "value", f.Value.String())
			})
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.opts.output, "output", "o", "text", "output format (text, json)")
	root.PersistentFlags().StringVar(&a.opts.logLevel, "log-level", defaultLogLevel(),
		"log level (trace, debug, info, warn, error, off), defaults to $"+logLevelEnv)
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.hsvCmd(),
		a.rgbCmd(),
		a.xyzCmd(),
		a.xyCmd(),
		a.cctCmd(),
		a.tempCmd(),
		a.adaptCmd(),
		a.locusCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the command line and exits with status 1 on failure.
// This is called by main.main().
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "colormath", colormath.Version)
		},
	}
}
