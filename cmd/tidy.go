package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabtidy/tabtidy/internal/tidy"
)

func newTidyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tidy [URL...]",
		Short: "Tidy URLs given as arguments or read from stdin",
		Long: `Tidy URLs given as arguments, or one per line from stdin when there are
no arguments. Input that is not an absolute URL is printed unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls, err := inputURLs(cmd, args)
			if err != nil {
				return err
			}
			printLines(cmd, tidyAll(tidy.New(cfg), urls))
			return nil
		},
	}
}

func tidyAll(t *tidy.Tidier, urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		tidied, err := t.Tidy(raw)
		if err != nil {
			slog.Warn("Keeping URL unchanged", slog.String("url", raw), slog.Any("error", err))
			tidied = raw
		}
		out = append(out, tidied)
	}
	return out
}

// inputURLs returns args, or the non-blank lines of stdin when there are
// no args.
func inputURLs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var urls []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return urls, nil
}
