package cmd

import (
	"fmt"
	"testing"

	"github.com/Iron-Ham/comux/internal/config"
	"github.com/Iron-Ham/comux/internal/errors"
	"github.com/Iron-Ham/comux/internal/logging"
	"github.com/Iron-Ham/comux/internal/supervisor"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}
	if rootCmd.Use != "comux" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "comux")
	}

	// Check for expected subcommands (compare by Name(), not Use which includes args)
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "man" {
			found = true
		}
	}
	if !found {
		t.Error("man subcommand not registered")
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"command", "file", "propagate", "format", "program", "scrollback", "grace", "log-file", "log-level"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
	if rootCmd.Flags().ShorthandLookup("c") == nil {
		t.Error("shorthand -c not registered")
	}
	if rootCmd.Flags().ShorthandLookup("f") == nil {
		t.Error("shorthand -f not registered")
	}
}

func TestExitErrorRoundTrip(t *testing.T) {
	var ee exitError
	err := fmt.Errorf("run failed: %w", exitError{code: 42})
	if !errors.As(err, &ee) {
		t.Fatal("exitError not recoverable through wrapping")
	}
	if ee.code != 42 {
		t.Errorf("code = %d, want 42", ee.code)
	}
}

func TestExitOutcome(t *testing.T) {
	logger := logging.NopLogger()

	if err := exitOutcome(logger, supervisor.Outcome{Code: 0, FailedID: -1}); err != nil {
		t.Errorf("success outcome should yield nil, got %v", err)
	}

	err := exitOutcome(logger, supervisor.Outcome{Code: 3, FailedID: 1})
	var ee exitError
	if !errors.As(err, &ee) || ee.code != 3 {
		t.Errorf("failure outcome should yield exitError{3}, got %v", err)
	}
}

func TestNewRunLoggerDiscardsForDashboard(t *testing.T) {
	cfg := config.Default()

	logger, err := newRunLogger(cfg)
	if err != nil {
		t.Fatalf("newRunLogger failed: %v", err)
	}
	defer logger.Close()

	// No file and no propagation: logs must not reach the terminal the
	// dashboard is drawing on.
	logger.Info("should be discarded")
}
