package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/linanwx/simplechat/responder"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the recognised phrases in match order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tCATEGORY\tPHRASES\tREPLY")
		fmt.Fprintln(tw, "-\t--------\t-------\t-----")
		for i, r := range responder.Rules() {
			reply := r.Reply
			if r.Category == responder.Exit {
				reply = "(closes the window)"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Category, strings.Join(quoteAll(r.Phrases), ", "), reply)
		}
		fmt.Fprintf(tw, "-\t%s\t(anything else)\t%s\n", responder.Unknown, responder.FallbackReply)
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
