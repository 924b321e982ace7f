// Package cmd wires the comux command-line interface: flag parsing,
// config resolution, and the run lifecycle from spawn to aggregate exit.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/comux/internal/config"
	"github.com/Iron-Ham/comux/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "comux",
	Short: "Run shell commands concurrently with a live dashboard",
	Long: `Comux spawns a set of shell commands in parallel, tracks each one
through its lifecycle, and renders a live terminal dashboard of their
status and recent output. With --propagate it instead forwards every
captured line to stdout, optionally as JSON or YAML records.

The process exits with the worst exit code among the commands, so a
comux invocation composes into scripts and CI the same way a single
command would.`,
	Example: `  comux -c 'make build' -c 'make lint'
  comux -f tasks.yaml --propagate --format json
  comux -c 'npm run dev' -c 'npm run api' --grace 10s`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// exitError carries a child-derived exit status through cobra's error
// path without printing anything: the dashboard or plain log already
// reported the failure.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// SetVersion sets the version string reported by --version.
func SetVersion(version string) {
	rootCmd.Version = version
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "comux: %v\n", err)
		if errors.IsConfig(err) {
			fmt.Fprintf(os.Stderr, "Run 'comux --help' for usage.\n")
		}
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.config/comux/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().StringArrayP("command", "c", nil, "command to run (repeatable)")
	rootCmd.Flags().StringArrayP("file", "f", nil, "file of commands to run, plain or structured (repeatable)")
	rootCmd.Flags().BoolP("propagate", "p", false, "forward captured output to stdout instead of rendering the dashboard")
	rootCmd.Flags().String("format", "", `propagated record format: "raw", "json", or "yaml"`)
	rootCmd.Flags().String("program", "", `shell used to execute each command (default "/bin/sh -c")`)
	rootCmd.Flags().Int("scrollback", 0, "recent output lines retained per process on the dashboard")
	rootCmd.Flags().Duration("grace", 5*time.Second, "how long children get to exit after an interrupt before force kill")
	rootCmd.Flags().String("log-file", "", "write structured logs to this file")
	rootCmd.Flags().String("log-level", "", "minimum log level: debug, info, warn, error")

	_ = viper.BindPFlag("output.propagate", rootCmd.Flags().Lookup("propagate"))
	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.scrollback_lines", rootCmd.Flags().Lookup("scrollback"))
	_ = viper.BindPFlag("run.program", rootCmd.Flags().Lookup("program"))
	_ = viper.BindPFlag("logging.file", rootCmd.Flags().Lookup("log-file"))
	_ = viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/comux")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COMUX")
	// Replace dots with underscores for nested keys in env vars
	// e.g., COMUX_OUTPUT_FORMAT for output.format
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
