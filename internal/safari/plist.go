package safari

import (
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"
)

const (
	bookmarksPath   = "Library/Safari/Bookmarks.plist"
	syncedPrefsPath = "Library/SyncedPreferences/com.apple.Safari.plist"

	readingListTitle = "com.apple.ReadingList"
)

// Bookmarks.plist is a tree of dicts:
//
//	<dict>
//	  <key>Children</key>
//	  <array>
//	    <dict><key>Title</key><string>com.apple.ReadingList</string>
//	          <key>Children</key><array>...<key>URLString</key>...</array></dict>
//	    ...
//	  </array>
//	</dict>
type bookmarkNode struct {
	Title     string         `plist:"Title"`
	URLString string         `plist:"URLString"`
	Children  []bookmarkNode `plist:"Children"`
}

// com.apple.Safari.plist keeps one entry per device under "values", keyed
// by device UUID:
//
//	values/<uuid>/value/DeviceName
//	values/<uuid>/value/Tabs[]/URL
type syncedPreferences struct {
	Values map[string]syncedDevice `plist:"values"`
}

type syncedDevice struct {
	Value struct {
		DeviceName string `plist:"DeviceName"`
		// Absent when Safari is closed or has no tabs on that device.
		Tabs []struct {
			Title string `plist:"Title"`
			URL   string `plist:"URL"`
		} `plist:"Tabs"`
	} `plist:"value"`
}

func readPlist(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	if err := plist.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}
	return nil
}

func (c *Client) path(rel string) string {
	return filepath.Join(c.home, rel)
}
