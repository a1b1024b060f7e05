package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tabtidy/tabtidy/internal/pattern"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns <patterns>",
		Short: "Show how close-tabs patterns are interpreted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conditions := pattern.Compile(splitPatterns(args))
			lines := make([]string, 0, len(conditions))
			for _, c := range conditions {
				lines = append(lines, c.String())
			}
			printLines(cmd, lines)
			return nil
		},
	}
}
