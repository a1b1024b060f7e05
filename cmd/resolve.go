package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tabtidy/tabtidy/internal/resolve"
	"github.com/tabtidy/tabtidy/internal/tidy"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [URL...]",
		Short: "Follow redirects, then tidy the final URLs",
		Long: `Follow the redirects of URLs given as arguments, or one per line from stdin
when there are no arguments, and print the tidied final URLs in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := inputURLs(cmd, args)
			if err != nil {
				return err
			}

			r, err := resolve.New(cfg.Resolve.Timeout, cfg.Resolve.CacheSize, cfg.Resolve.Concurrency)
			if err != nil {
				return err
			}
			finals, err := r.ResolveAll(cmd.Context(), urls)
			if err != nil {
				return err
			}
			printLines(cmd, tidyAll(tidy.New(cfg), finals))
			return nil
		},
	}
}
