// Package commands implements CLI command handlers for drill.
package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/internal/casebook"
	"github.com/katalvlaran/patterns/internal/config"
	"github.com/katalvlaran/patterns/internal/logging"
	"github.com/katalvlaran/patterns/internal/report"
)

// ErrCasesFailed is returned when at least one case did not pass.
var ErrCasesFailed = errors.New("casebook run failed")

// RunCommand holds the flags of the run command.
type RunCommand struct {
	configPath string
	format     string
	ops        []string
	failFast   bool
	noColor    bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{}

	cmd := &cobra.Command{
		Use:   "run [casebook.yaml ...]",
		Short: "Run casebooks",
		Long:  "Run every case of the given casebooks, or of the built-in tutorial casebook when none are given.",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Config file (default: drill.yaml in . or ./config)")
	cmd.Flags().StringVar(&rc.format, "format", config.FormatTable, "Output format: table, yaml, json")
	cmd.Flags().StringArrayVar(&rc.ops, "op", nil, "Only run cases of this operation (repeatable)")
	cmd.Flags().BoolVar(&rc.failFast, "fail-fast", false, "Stop at the first case that does not pass")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(rc.configPath)
	if err != nil {
		return err
	}
	rc.applyFlags(cmd, cfg, args)
	if err = cfg.Validate(); err != nil {
		return err
	}

	if !cfg.Output.Color {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	books, err := loadBooks(cfg.Run.Casebooks)
	if err != nil {
		return err
	}
	logger.Info("casebooks loaded", "count", len(books))

	rep, err := casebook.Run(cmd.Context(), books, casebook.RunOptions{
		Ops:      cfg.Run.Ops,
		FailFast: cfg.Run.FailFast,
	}, logger)
	if err != nil {
		return err
	}

	if err = report.Render(cmd.OutOrStdout(), rep, cfg.Output.Format); err != nil {
		return err
	}
	if !rep.OK() {
		return fmt.Errorf("%w: %d failed, %d errored", ErrCasesFailed, rep.Failed, rep.Errored)
	}

	return nil
}

// applyFlags overlays explicitly set flags and positional casebooks on cfg.
func (rc *RunCommand) applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Run.Casebooks = args
	}
	if flags.Changed("format") {
		cfg.Output.Format = rc.format
	}
	if flags.Changed("op") {
		cfg.Run.Ops = rc.ops
	}
	if flags.Changed("fail-fast") {
		cfg.Run.FailFast = rc.failFast
	}
	if rc.noColor {
		cfg.Output.Color = false
	}

	// Persistent flags are only present when the command hangs off the root.
	if v, err := flags.GetBool("verbose"); err == nil && v {
		cfg.Logging.Level = "debug"
	}
	if q, err := flags.GetBool("quiet"); err == nil && q {
		cfg.Logging.Level = "error"
	}
}

func loadBooks(paths []string) ([]*casebook.Book, error) {
	if len(paths) == 0 {
		book, err := casebook.Default()
		if err != nil {
			return nil, err
		}
		return []*casebook.Book{book}, nil
	}

	books := make([]*casebook.Book, 0, len(paths))
	for _, p := range paths {
		book, err := casebook.LoadFile(p)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}
