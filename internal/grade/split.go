package grade

import "strings"

// SplitItems turns a raw response into list items: one item per line, with
// surrounding whitespace trimmed and blank lines dropped. This is the one
// canonical splitting rule for ListAnswer and OrderedListAnswer responses.
func SplitItems(response string) []string {
	var items []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
