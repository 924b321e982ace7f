package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/comux/internal/config"
	"github.com/Iron-Ham/comux/internal/encode"
	"github.com/Iron-Ham/comux/internal/logging"
	"github.com/Iron-Ham/comux/internal/output"
	"github.com/Iron-Ham/comux/internal/supervisor"
	"github.com/Iron-Ham/comux/internal/task"
	"github.com/Iron-Ham/comux/internal/tui"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("grace") {
		grace, err := cmd.Flags().GetDuration("grace")
		if err != nil {
			return err
		}
		cfg.Run.GracePeriodMs = int(grace.Milliseconds())
	}

	commandFlags, err := cmd.Flags().GetStringArray("command")
	if err != nil {
		return err
	}
	fileFlags, err := cmd.Flags().GetStringArray("file")
	if err != nil {
		return err
	}

	commands, err := task.Load(commandFlags, fileFlags)
	if err != nil {
		return err
	}

	logger, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	opts := []supervisor.Option{
		supervisor.WithLogger(logger),
		supervisor.WithProgram(cfg.Run.Program),
		supervisor.WithScrollback(cfg.Output.ScrollbackLines),
		supervisor.WithMaxLineBytes(cfg.Output.MaxLineBytes),
	}

	// In propagation mode every captured line goes to stdout through one
	// encoder. The supervisor invokes the handler from its coordinator
	// goroutine only, so the encoder needs no locking.
	var enc encode.Encoder
	if cfg.Output.Propagate {
		enc, err = encode.New(cfg.Output.Format, os.Stdout)
		if err != nil {
			return err
		}
		opts = append(opts, supervisor.WithLineHandler(func(line output.Line) {
			if err := enc.EncodeLine(line); err != nil {
				logger.Error("failed to encode output line", "error", err)
			}
		}))
	}

	sup, err := supervisor.New(commands, opts...)
	if err != nil {
		return err
	}

	coord := supervisor.NewSignalCoordinator(sup, cfg.Run.GracePeriod(), logger)

	logger.Info("starting run",
		"processes", len(commands),
		"propagate", cfg.Output.Propagate,
		"grace", cfg.Run.GracePeriod().String())

	sup.Start()
	coord.Start()

	if cfg.Output.Propagate {
		outcome := sup.Wait()
		if err := enc.Flush(); err != nil {
			logger.Error("failed to flush output", "error", err)
		}
		return exitOutcome(logger, outcome)
	}

	app := tui.New(sup, coord, cfg.TUI.RedrawInterval(), cfg.TUI.MaxLabelWidth)
	if err := app.Run(); err != nil {
		return err
	}
	return exitOutcome(logger, sup.Wait())
}

// newRunLogger builds the run's logger. With no log file configured the
// dashboard discards logs (it owns the terminal); propagation mode logs
// to stderr, which stays free for diagnostics.
func newRunLogger(cfg *config.Config) (*logging.Logger, error) {
	if cfg.Logging.File == "" && !cfg.Output.Propagate {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
}

// exitOutcome converts the aggregate outcome into the command result.
func exitOutcome(logger *logging.Logger, outcome supervisor.Outcome) error {
	if outcome.Success() {
		logger.Info("run finished", "exit_code", 0)
		return nil
	}
	logger.Info("run finished", "exit_code", outcome.Code, "failed_process", outcome.FailedID)
	return exitError{code: outcome.Code}
}
