package safari

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/tabtidy/tabtidy/internal/applescript"
	"github.com/tabtidy/tabtidy/internal/pattern"
	"github.com/tabtidy/tabtidy/internal/tidy"
)

var (
	ErrInvalidIndex = errors.New("invalid index: no such window or tab")
	ErrNotRunning   = errors.New("safari is not running")
	ErrNotFound     = errors.New("not found")
	ErrAmbiguous    = errors.New("more than one match")
)

// Client reads and closes tabs of a Safari instance and reads its
// preference files under Home.
type Client struct {
	runner applescript.Runner
	tidier *tidy.Tidier
	app    string
	home   string
}

func New(runner applescript.Runner, tidier *tidy.Tidier, app, home string) *Client {
	if tidier == nil {
		tidier = tidy.Default()
	}
	return &Client{
		runner: runner,
		tidier: tidier,
		app:    app,
		home:   home,
	}
}

// URL returns the tidied URL of a tab. window and tab count from 1; 0 means
// the frontmost one.
func (c *Client) URL(ctx context.Context, window, tab int) (string, error) {
	if window < 0 || tab < 0 {
		return "", fmt.Errorf("%w: window %d, tab %d", ErrInvalidIndex, window, tab)
	}
	if tab > 0 && window == 0 {
		return "", errors.New("cannot select a tab without a window")
	}

	out, err := c.runner.Run(ctx, getURLScript(c.app, window, tab))
	if err != nil {
		return "", err
	}
	if !out.Success() {
		if strings.Contains(out.Stderr, "Invalid index") {
			return "", ErrInvalidIndex
		}
		return "", fmt.Errorf("unexpected error from osascript: %q", out.Stderr)
	}
	return c.tidy(strings.TrimSpace(out.Stdout)), nil
}

// AllURLs returns the tidied URL of every open tab. The order is whatever
// AppleScript reports, which depends on window stacking.
func (c *Client) AllURLs(ctx context.Context) ([]string, error) {
	script, err := renderScript("list-open-tabs.applescript", scriptData{App: c.app})
	if err != nil {
		return nil, err
	}
	out, err := c.runner.Run(ctx, script)
	if err != nil {
		return nil, err
	}
	if !out.Success() {
		return nil, fmt.Errorf("unexpected error from osascript: %q", out.Stderr)
	}
	return c.parseListOpenTabsOutput(out.Stdout), nil
}

// parseListOpenTabsOutput splits the ", "-joined list osascript prints.
// Favorites pages and tabs without a URL are dropped.
func (c *Client) parseListOpenTabsOutput(stdout string) []string {
	stdout = strings.TrimSpace(stdout)
	if stdout == "" {
		return []string{}
	}
	urls := []string{}
	for _, raw := range strings.Split(stdout, ", ") {
		raw = strings.TrimSpace(raw)
		switch raw {
		case "", "favorites://", "missing value", "://missing value":
			continue
		}
		urls = append(urls, c.tidy(raw))
	}
	return urls
}

// CloseTabs closes every tab whose URL matches one of the patterns. The
// script is run twice since a single pass often skips tabs; when in doubt
// it leaves a tab open rather than closing the wrong one.
func (c *Client) CloseTabs(ctx context.Context, patterns []string) error {
	conditions := pattern.Compile(patterns)
	if len(conditions) == 0 {
		return nil
	}
	script, err := renderScript("close-tabs.applescript", scriptData{App: c.app, Conditions: conditions})
	if err != nil {
		return err
	}

	for pass := 1; pass <= 2; pass++ {
		out, err := c.runner.Run(ctx, script)
		if err != nil {
			return err
		}
		if !out.Success() {
			slog.Warn("close-tabs pass failed", slog.Int("pass", pass), slog.String("stderr", strings.TrimSpace(out.Stderr)))
		}
	}
	return nil
}

func (c *Client) tidy(raw string) string {
	tidied, err := c.tidier.Tidy(raw)
	if err != nil {
		slog.Debug("Leaving URL as is", slog.String("url", raw), slog.Any("error", err))
		return raw
	}
	return tidied
}

// IsRunning reports whether a Safari process shows up in `ps -eaf`.
func IsRunning(ctx context.Context) (bool, error) {
	out, err := exec.CommandContext(ctx, "ps", "-eaf").Output()
	if err != nil {
		return false, fmt.Errorf("unable to test if Safari is running: %w", err)
	}
	return hasSafariProcess(string(out)), nil
}

func hasSafariProcess(psOutput string) bool {
	for _, line := range strings.Split(psOutput, "\n") {
		if strings.Contains(line, "Safari.app/Contents/MacOS/Safari") {
			return true
		}
	}
	return false
}
