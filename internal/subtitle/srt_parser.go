package subtitle

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var srtRangeRegex = regexp.MustCompile(
	`(\d{2,}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2}),(\d{3})`,
)

// parseSRT parses SubRip content: blocks separated by blank lines, each
// with an optional numeric index line, a time-range line and text lines.
// Malformed blocks are skipped and counted, never fatal.
func parseSRT(content string) *Document {
	doc := &Document{}

	var block []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flushSRTBlock(doc, block)
			block = nil
			continue
		}

		block = append(block, line)
	}
	flushSRTBlock(doc, block)

	return doc
}

func flushSRTBlock(doc *Document, block []string) {
	if len(block) == 0 {
		return
	}

	// the index line is not trusted; entries are renumbered sequentially
	if _, err := strconv.Atoi(strings.TrimSpace(block[0])); err == nil {
		block = block[1:]
	}

	if len(block) == 0 {
		doc.SkippedBlocks++
		return
	}

	matches := srtRangeRegex.FindStringSubmatch(block[0])
	if len(matches) != 9 {
		doc.SkippedBlocks++
		return
	}

	startTime, err := parseClockTime(
		matches[1], matches[2], matches[3], matches[4],
	)
	if err != nil {
		doc.SkippedBlocks++
		return
	}
	endTime, err := parseClockTime(
		matches[5], matches[6], matches[7], matches[8],
	)
	if err != nil {
		doc.SkippedBlocks++
		return
	}

	text := cleanText(block[1:])
	if text == "" {
		doc.SkippedBlocks++
		return
	}

	doc.Entries = append(doc.Entries, Entry{
		Index:     len(doc.Entries) + 1,
		StartTime: startTime,
		EndTime:   endTime,
		Text:      text,
	})
}
