package safari

import (
	"fmt"
	"sort"
)

// DeviceTabs are the tidied tab URLs of one iCloud device.
type DeviceTabs struct {
	Device string
	URLs   []string
}

func (c *Client) readSyncedPreferences() (*syncedPreferences, error) {
	path := c.path(syncedPrefsPath)
	var prefs syncedPreferences
	if err := readPlist(path, &prefs); err != nil {
		return nil, err
	}
	if prefs.Values == nil {
		return nil, fmt.Errorf("%s: %w: top-level values key", path, ErrNotFound)
	}
	return &prefs, nil
}

// ICloudDevices lists every device known to iCloud Tabs, sorted by name.
func (c *Client) ICloudDevices() ([]string, error) {
	prefs, err := c.readSyncedPreferences()
	if err != nil {
		return nil, err
	}
	devices := make([]string, 0, len(prefs.Values))
	for _, d := range prefs.Values {
		devices = append(devices, d.Value.DeviceName)
	}
	sort.Strings(devices)
	return devices, nil
}

// ICloudTabs returns the tabs of every device that has some, sorted by
// device name. A non-empty device limits the result to that device.
func (c *Client) ICloudTabs(device string) ([]DeviceTabs, error) {
	prefs, err := c.readSyncedPreferences()
	if err != nil {
		return nil, err
	}

	var result []DeviceTabs
	for _, d := range prefs.Values {
		if d.Value.Tabs == nil {
			continue
		}
		if device != "" && d.Value.DeviceName != device {
			continue
		}
		urls := make([]string, 0, len(d.Value.Tabs))
		for _, tab := range d.Value.Tabs {
			urls = append(urls, c.tidy(tab.URL))
		}
		result = append(result, DeviceTabs{Device: d.Value.DeviceName, URLs: urls})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Device < result[j].Device
	})

	if device != "" && len(result) == 0 {
		return nil, fmt.Errorf("%w: no tabs for device %q", ErrNotFound, device)
	}
	return result, nil
}
