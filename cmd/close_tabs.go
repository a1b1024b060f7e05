package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func newCloseTabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close-tabs <patterns>",
		Short: "Close any tabs whose URL matches one of the patterns",
		Long: `Close any tabs whose URL matches one of the comma-separated patterns.

A pattern starting with ^ matches the start of the URL, a pattern ending
with $ matches the end, and anything else matches anywhere in the URL.`,
		Example: "  tabtidy close-tabs 'github.com,^https://facebook.com,twitter.com$'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := splitPatterns(args)
			if len(patterns) == 0 {
				slog.Warn("No patterns given, nothing to close")
				return nil
			}

			client, err := runningSafari(cmd)
			if err != nil {
				return err
			}
			return client.CloseTabs(cmd.Context(), patterns)
		},
	}
}

// splitPatterns accepts patterns as separate arguments, comma-separated
// lists, or a mix of both. Empty entries are dropped.
func splitPatterns(args []string) []string {
	var patterns []string
	for _, arg := range args {
		for _, p := range strings.Split(arg, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
	}
	return patterns
}
