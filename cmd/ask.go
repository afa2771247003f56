package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linanwx/simplechat/responder"
	"github.com/linanwx/simplechat/session"
)

var (
	askMessage string
	askJSON    bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a single message and exit",
	Long: `Classify one message and print the exchange as the chat log would show it.
The exit phrase prints nothing.

Examples:
  simplechat ask -m "Tell me a joke"
  simplechat ask -m hi --json`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askMessage, "message", "m", "", "Message to answer")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the reply decision as JSON")
	_ = askCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, _ []string) error {
	d := responder.Classify(askMessage)
	out := cmd.OutOrStdout()

	if askJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode decision: %w", err)
		}
		return nil
	}

	if d.ShouldTerminate {
		return nil
	}
	for _, line := range session.FormatExchange(d) {
		fmt.Fprintln(out, line)
	}
	return nil
}
