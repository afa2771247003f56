// Package cmd implements the simplechat command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linanwx/simplechat/config"
	"github.com/linanwx/simplechat/logger"
)

var (
	configDirFlag string

	// appConfig is loaded once by setupLogging and shared with subcommands.
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "simplechat",
	Short: "A small chat window that answers a handful of phrases",
	Long: `simplechat opens a chat window with a scrollable log, an input field
and a Send button. It recognises a few fixed phrases ("hello", "what is ai?",
"how are you?", "tell me a joke") and answers everything else with a fallback.
Type "exit" to close the window.`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: setupLogging,
	RunE:             runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Config directory (default ~/.simplechat)")
	rootCmd.Flags().BoolVar(&chatPlain, "plain", false, "Use the line-oriented chat even on a terminal")
}

// setupLogging applies --config-dir and starts the logger. Logging problems
// are reported but never stop the chat.
func setupLogging(cmd *cobra.Command, _ []string) {
	config.SetConfigDir(configDirFlag)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "config error, using defaults:", err)
		cfg = config.DefaultConfig()
	}
	appConfig = cfg
	dir, _ := config.ConfigDir()
	if err := logger.Init(cfg.BuildLoggerConfig(), dir); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "logger init error:", err)
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and closes the log file on every path,
// including a RunE error, before Execute can exit.
func run() error {
	defer logger.Close()
	return rootCmd.Execute()
}

// loadedConfig is the config setupLogging read, or the defaults when no
// command has run yet.
func loadedConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}
