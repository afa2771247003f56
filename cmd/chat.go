package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/linanwx/simplechat/channel"
	"github.com/linanwx/simplechat/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat window (default command)",
	Long: `Open the chat window. On a terminal this is a full-screen view; when
stdin is not a terminal (or with --plain) every input line is one message and
the exchange is printed as it would appear in the log.

Examples:
  simplechat                       # Open the window
  simplechat chat --plain          # Line mode on a terminal
  printf 'hi\nexit\n' | simplechat # Scripted session`,
	RunE: runChat,
}

var chatPlain bool

func init() {
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "Use the line-oriented chat even on a terminal")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg := loadedConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ch := channel.NewCLIChannel(channel.Config{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		ShowLogs: cfg.Window.ShowLogs,
		Plain:    chatPlain,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
	})
	logger.Debug("chat channel selected", "channel", ch.Name())

	return ch.Run(ctx)
}
