package search

import (
	"strings"

	"subgrep/internal/subtitle"
)

// one retained search hit
type Result struct {
	Path  string
	Entry subtitle.Entry
}

// Match scans entries for the term and returns the hits in entry order.
// Case-insensitive mode lower-cases both the term and the entry text.
func Match(
	entries []subtitle.Entry,
	term string,
	caseSensitive bool,
) []subtitle.Entry {
	if !caseSensitive {
		term = strings.ToLower(term)
	}

	var matched []subtitle.Entry
	for _, entry := range entries {
		text := entry.Text
		if !caseSensitive {
			text = strings.ToLower(text)
		}
		if strings.Contains(text, term) {
			matched = append(matched, entry)
		}
	}

	return matched
}
