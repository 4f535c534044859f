package subtitle

import (
	"regexp"
	"strings"
)

// inline markup found in generated captions: <c.yellow>, <i>,
// karaoke timing tags like <00:00:01.500>, plus {}-style override blocks
var (
	angleTagRegex   = regexp.MustCompile(`<[^>]*>`)
	braceTagRegex   = regexp.MustCompile(`\{[^}]*\}`)
	htmlEntityRegex = regexp.MustCompile(`&[a-zA-Z]+;`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// joins cue text lines into a single cleaned string: markup stripped,
// internal whitespace collapsed, lines joined with one space
func cleanText(lines []string) string {
	text := strings.Join(lines, " ")
	text = angleTagRegex.ReplaceAllString(text, "")
	text = braceTagRegex.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = htmlEntityRegex.ReplaceAllString(text, "")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
