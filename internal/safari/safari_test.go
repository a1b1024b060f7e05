package safari

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/tabtidy/tabtidy/internal/applescript"
)

type fakeRunner struct {
	out     applescript.Output
	err     error
	scripts []string
}

func (f *fakeRunner) Run(_ context.Context, script string) (applescript.Output, error) {
	f.scripts = append(f.scripts, script)
	return f.out, f.err
}

func newClient(runner applescript.Runner, home string) *Client {
	return New(runner, nil, "Safari", home)
}

func TestURL(t *testing.T) {
	tests := []struct {
		name   string
		window int
		tab    int
		script string
	}{
		{"frontmost", 0, 0, `tell application "Safari" to get URL of document 1`},
		{"window", 2, 0, `tell application "Safari" to get URL of document 2`},
		{"window and tab", 1, 3, `tell application "Safari" to get URL of tab 3 of window 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: applescript.Output{Stdout: "https://mobile.twitter.com/x/status/1?s=20\n"}}
			got, err := newClient(runner, "").URL(context.Background(), tt.window, tt.tab)
			require.NoError(t, err)
			assert.Equal(t, "https://twitter.com/x/status/1", got)
			require.Len(t, runner.scripts, 1)
			assert.Equal(t, tt.script, runner.scripts[0])
		})
	}
}

func TestURLErrors(t *testing.T) {
	ctx := context.Background()

	runner := &fakeRunner{out: applescript.Output{Status: 1, Stderr: "execution error: Safari got an error: Invalid index. (-1719)"}}
	_, err := newClient(runner, "").URL(ctx, 9, 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	runner = &fakeRunner{out: applescript.Output{Status: 1, Stderr: "boom"}}
	_, err = newClient(runner, "").URL(ctx, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	runner = &fakeRunner{err: applescript.ErrExecution}
	_, err = newClient(runner, "").URL(ctx, 0, 0)
	assert.ErrorIs(t, err, applescript.ErrExecution)

	_, err = newClient(&fakeRunner{}, "").URL(ctx, 0, 2)
	assert.Error(t, err)
	_, err = newClient(&fakeRunner{}, "").URL(ctx, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestParseListOpenTabsOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"favorites with url", "favorites://, http://example.org", []string{"http://example.org"}},
		{"url with missing value", "missing value, https://www.example.net", []string{"https://www.example.net"}},
		{"single url", "http://foo_bar.com", []string{"http://foo_bar.com"}},
		{"multiple urls", "http://example.org, https://www.example.net, http://test.co.uk", []string{"http://example.org", "https://www.example.net", "http://test.co.uk"}},
		{"with extra whitespace", "    http://space.org, https://www.nasa.gov   \n", []string{"http://space.org", "https://www.nasa.gov"}},
		{"applies tidy", "https://mobile.twitter.com", []string{"https://twitter.com"}},
		{"keeps unparsable entries", "about:blank, https://example.com?utm_source=x", []string{"about:blank", "https://example.com"}},
	}
	c := newClient(&fakeRunner{}, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.parseListOpenTabsOutput(tt.input))
		})
	}
}

func TestAllURLs(t *testing.T) {
	runner := &fakeRunner{out: applescript.Output{Stdout: "https://example.com/?_ga=1, favorites://\n"}}
	got, err := newClient(runner, "").AllURLs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/"}, got)
	require.Len(t, runner.scripts, 1)
	assert.Contains(t, runner.scripts[0], `tell application "Safari"`)
	assert.Contains(t, runner.scripts[0], "URL of t")
}

func TestCloseTabs(t *testing.T) {
	runner := &fakeRunner{}
	err := newClient(runner, "").CloseTabs(context.Background(), []string{"github.com", "^facebook.com", "twitter.com$"})
	require.NoError(t, err)

	require.Len(t, runner.scripts, 2)
	assert.Equal(t, runner.scripts[0], runner.scripts[1])
	assert.Contains(t, runner.scripts[0],
		`if tabURL contains "github.com" or tabURL starts with "facebook.com" or tabURL ends with "twitter.com" then`)
}

func TestCloseTabsNoPatterns(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, newClient(runner, "").CloseTabs(context.Background(), nil))
	assert.Empty(t, runner.scripts)
}

func writePlist(t *testing.T, home, rel string, v any) {
	t.Helper()
	path := filepath.Join(home, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data, err := plist.Marshal(v, plist.XMLFormat)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestReadingList(t *testing.T) {
	home := t.TempDir()
	writePlist(t, home, bookmarksPath, map[string]any{
		"Children": []any{
			map[string]any{"Title": "History"},
			map[string]any{
				"Title": "com.apple.ReadingList",
				"Children": []any{
					map[string]any{"URLString": "https://medium.com/@a/post-123#.abc"},
					map[string]any{"URLString": "https://example.org/?utm_medium=rss"},
				},
			},
		},
	})

	got, err := newClient(&fakeRunner{}, home).ReadingList()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://medium.com/@a/post-123", "https://example.org/"}, got)
}

func TestReadingListErrors(t *testing.T) {
	home := t.TempDir()
	_, err := newClient(&fakeRunner{}, home).ReadingList()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	writePlist(t, home, bookmarksPath, map[string]any{
		"Children": []any{map[string]any{"Title": "History"}},
	})
	_, err = newClient(&fakeRunner{}, home).ReadingList()
	assert.ErrorIs(t, err, ErrNotFound)

	writePlist(t, home, bookmarksPath, map[string]any{
		"Children": []any{
			map[string]any{"Title": "com.apple.ReadingList"},
			map[string]any{"Title": "com.apple.ReadingList"},
		},
	})
	_, err = newClient(&fakeRunner{}, home).ReadingList()
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func writeSyncedPreferences(t *testing.T, home string) {
	t.Helper()
	writePlist(t, home, syncedPrefsPath, map[string]any{
		"values": map[string]any{
			"0F6E3C1A": map[string]any{
				"value": map[string]any{
					"DeviceName": "iPhone",
					"Tabs": []any{
						map[string]any{"Title": "Tweet", "URL": "https://mobile.twitter.com/a/status/1"},
					},
				},
			},
			"9B2D7E44": map[string]any{
				"value": map[string]any{
					"DeviceName": "iPad",
					"Tabs": []any{
						map[string]any{"Title": "Docs", "URL": "https://docs.python.org/3/library/os.html?highlight=os"},
						map[string]any{"Title": "SO", "URL": "https://stackoverflow.com/questions/82831/x#82852"},
					},
				},
			},
			"44AA0000": map[string]any{
				"value": map[string]any{"DeviceName": "Old Mac"},
			},
		},
	})
}

func TestICloudDevices(t *testing.T) {
	home := t.TempDir()
	writeSyncedPreferences(t, home)

	got, err := newClient(&fakeRunner{}, home).ICloudDevices()
	require.NoError(t, err)
	assert.Equal(t, []string{"Old Mac", "iPad", "iPhone"}, got)
}

func TestICloudTabs(t *testing.T) {
	home := t.TempDir()
	writeSyncedPreferences(t, home)
	c := newClient(&fakeRunner{}, home)

	got, err := c.ICloudTabs("")
	require.NoError(t, err)
	assert.Equal(t, []DeviceTabs{
		{Device: "iPad", URLs: []string{"https://docs.python.org/3/library/os.html", "https://stackoverflow.com/a/82852/1558022"}},
		{Device: "iPhone", URLs: []string{"https://twitter.com/a/status/1"}},
	}, got)

	got, err = c.ICloudTabs("iPhone")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "iPhone", got[0].Device)

	_, err = c.ICloudTabs("Old Mac")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHasSafariProcess(t *testing.T) {
	ps := strings.Join([]string{
		"  UID   PID  PPID   C STIME   TTY           TIME CMD",
		"  501   612     1   0  9:14AM ??         3:01.22 /Applications/Safari.app/Contents/MacOS/Safari",
	}, "\n")
	assert.True(t, hasSafariProcess(ps))
	assert.False(t, hasSafariProcess("  501   1     0   0  9:14AM ??  0:01.00 /sbin/launchd"))
}
