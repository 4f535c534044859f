package subtitle

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

var vttRangeRegex = regexp.MustCompile(
	`(\d{2,}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})\.(\d{3})`,
)

// parseVTT parses WebVTT content. The file must open with a WEBVTT header
// line (trailing metadata after the token is allowed). NOTE and STYLE
// blocks are skipped, cue identifiers are ignored, and cue-settings after
// the second timestamp (align:, position:, ...) are discarded. Lines that
// look like a time range but fail the grammar skip the cue and are counted.
func parseVTT(content string) (*Document, error) {
	doc := &Document{}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	headerSeen := false

	var currentEntry *Entry
	var textLines []string

	flush := func() {
		if currentEntry == nil {
			return
		}
		text := cleanText(textLines)
		if text != "" {
			currentEntry.Index = len(doc.Entries) + 1
			currentEntry.Text = text
			doc.Entries = append(doc.Entries, *currentEntry)
		}
		currentEntry = nil
		textLines = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)

		if !headerSeen {
			if trimmed == "" {
				continue
			}
			if !isVTTHeader(trimmed) {
				return nil, fmt.Errorf(
					"%w: missing WEBVTT header", ErrUnknownFormat,
				)
			}
			headerSeen = true
			continue
		}

		if strings.HasPrefix(trimmed, "NOTE") ||
			strings.HasPrefix(trimmed, "STYLE") {
			flush()
			for scanner.Scan() {
				lineNum++
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if strings.Contains(line, "-->") {
			flush()

			matches := vttRangeRegex.FindStringSubmatch(line)
			if len(matches) != 9 {
				doc.SkippedBlocks++
				continue
			}

			startTime, err := parseClockTime(
				matches[1], matches[2], matches[3], matches[4],
			)
			if err != nil {
				doc.SkippedBlocks++
				continue
			}
			endTime, err := parseClockTime(
				matches[5], matches[6], matches[7], matches[8],
			)
			if err != nil {
				doc.SkippedBlocks++
				continue
			}

			currentEntry = &Entry{
				StartTime: startTime,
				EndTime:   endTime,
			}
			continue
		}

		if currentEntry != nil {
			textLines = append(textLines, line)
		}
		// otherwise a cue identifier, ignored
	}
	flush()

	if !headerSeen {
		return nil, fmt.Errorf("%w: missing WEBVTT header", ErrUnknownFormat)
	}

	return doc, nil
}

func isVTTHeader(line string) bool {
	token := line
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		token = line[:i]
	}
	return strings.EqualFold(token, "WEBVTT")
}
