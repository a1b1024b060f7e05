package safari

import "fmt"

// ReadingList returns the tidied URLs saved to Reading List, in the order
// Bookmarks.plist stores them (usually newest first).
func (c *Client) ReadingList() ([]string, error) {
	path := c.path(bookmarksPath)
	var root bookmarkNode
	if err := readPlist(path, &root); err != nil {
		return nil, err
	}

	list, err := findChild(root.Children, readingListTitle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	urls := make([]string, 0, len(list.Children))
	for _, item := range list.Children {
		if item.URLString == "" {
			continue
		}
		urls = append(urls, c.tidy(item.URLString))
	}
	return urls, nil
}

// findChild returns the one child with the given title.
func findChild(children []bookmarkNode, title string) (*bookmarkNode, error) {
	var found *bookmarkNode
	for i := range children {
		if children[i].Title != title {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: got more than one result for %s", ErrAmbiguous, title)
		}
		found = &children[i]
	}
	if found == nil {
		return nil, fmt.Errorf("%w: unable to find key %s", ErrNotFound, title)
	}
	return found, nil
}
