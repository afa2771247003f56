package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/linanwx/simplechat/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create the simplechat config file",
	Long:  `Create the simplechat configuration directory and config file interactively.`,
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

// onboardAnswers holds the wizard results before they are applied.
type onboardAnswers struct {
	LogLevel   string
	LogStdout  bool
	ShowLogs   bool
	DisableLog bool
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at:", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), "To reconfigure, edit the file directly or delete it first.")
		return nil
	}

	answers := onboardAnswers{LogLevel: "info"}
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Disable logging?").
				Description("simplechat writes a small diagnostic log by default.").
				Value(&answers.DisableLog),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("info [Recommended]", "info"),
					huh.NewOption("debug (logs every classification)", "debug"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&answers.LogLevel),
			huh.NewConfirm().
				Title("Show the log panel in the chat window?").
				Value(&answers.ShowLogs),
			huh.NewConfirm().
				Title("Also log to stdout in line mode?").
				Description("Log lines are mixed with the chat transcript.").
				Value(&answers.LogStdout),
		).WithHideFunc(func() bool { return answers.DisableLog }),
	).Run()
	if err != nil {
		return err
	}

	cfg := answers.apply(config.DefaultConfig())
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "simplechat configured.")
	fmt.Fprintln(cmd.OutOrStdout(), "  Config:", configPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'simplechat' to open the chat window.")
	return nil
}

func (a onboardAnswers) apply(cfg *config.Config) *config.Config {
	enabled := !a.DisableLog
	cfg.Logging.Enabled = &enabled
	if enabled {
		cfg.Logging.Level = a.LogLevel
		cfg.Logging.Stdout = a.LogStdout
		cfg.Window.ShowLogs = a.ShowLogs
	}
	return cfg
}
