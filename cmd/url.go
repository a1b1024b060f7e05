package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "url",
		Short: "Print a URL from an open Safari tab",
		Long:  "Print a URL from an open Safari tab. Without flags this is the frontmost tab of the frontmost window.",
		Args:  cobra.NoArgs,
		RunE:  runURL,
	}
	c.Flags().Int("window", 0, "Which window to choose a URL from: 1 for the frontmost window, 2 for the second, and so on")
	c.Flags().Int("tab", 0, "Which tab to choose a URL from: 1 for the leftmost tab, 2 for second-from-left, and so on")
	return c
}

func runURL(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetInt("window")
	tab, _ := cmd.Flags().GetInt("tab")
	if err := checkWindowTab(window, tab); err != nil {
		return err
	}

	client, err := runningSafari(cmd)
	if err != nil {
		return err
	}
	url, err := client.URL(cmd.Context(), window, tab)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

// checkWindowTab rejects the flag combinations the url command cannot
// serve. Zero means the flag was not given.
func checkWindowTab(window, tab int) error {
	if window < 0 {
		return fmt.Errorf("%w: --window must be greater than 0; got %d", errUsage, window)
	}
	if tab < 0 {
		return fmt.Errorf("%w: --tab must be greater than 0; got %d", errUsage, tab)
	}
	if tab > 0 && window == 0 {
		return fmt.Errorf("%w: cannot use --tab without --window", errUsage)
	}
	return nil
}
