package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/config"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoPath  = 2
	ExitTimeout = 3
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	Verbose    bool
	ConfigFile string
	LogFormat  string
	Output     string
}

// app carries what every subcommand needs once the root has run.
type app struct {
	flags GlobalFlags
	cfg   *config.Config
	log   *slog.Logger
}

// Execute runs the CLI with SIGINT/SIGTERM cancelling ctx.
func Execute(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(os.Stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// newRootCmd assembles the command tree. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "terrapath",
		Short: "Cost-weighted routing over classified terrain",
		Long: `terrapath converts a land-cover label raster and a per-class cost table
into a cost grid and finds minimum-cost routes across it with A*.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(logOut)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.flags.ConfigFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&a.flags.LogFormat, "log-format", "", "Log format (text|json), overrides the config")
	pf.StringVarP(&a.flags.Output, "output", "o", string(FormatText), "Output format (text|json)")

	root.AddCommand(
		newRouteCmd(a),
		newCostmapCmd(a),
		newSurfaceCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads configuration and installs the default logger.
func (a *app) init(logOut io.Writer) error {
	if a.flags.Output != string(FormatText) && a.flags.Output != string(FormatJSON) {
		return fmt.Errorf("--output must be text or json, got %q", a.flags.Output)
	}
	cfg, err := config.LoadWithDefaults(a.flags.ConfigFile)
	if err != nil {
		return err
	}
	if a.flags.LogFormat != "" {
		cfg.Logging.Format = a.flags.LogFormat
	}
	if a.flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg
	a.log = newLogger(logOut, cfg.Logging)
	slog.SetDefault(a.log)

	return nil
}

// format returns the parsed output format.
func (a *app) format() OutputFormat {
	if a.flags.Output == string(FormatJSON) {
		return FormatJSON
	}

	return FormatText
}

// newLogger builds a text or JSON slog handler at the configured level.
func newLogger(w io.Writer, lc config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, astar.ErrNoPath):
		return ExitNoPath
	case errors.Is(err, astar.ErrTimeout):
		return ExitTimeout
	default:
		return ExitError
	}
}
