package subtitle

import (
	"errors"
	"time"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// result of parsing one subtitle file
type Document struct {
	Entries       []Entry
	SkippedBlocks int
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT     Format = "srt"
	FormatVTT     Format = "vtt"
	FormatUnknown Format = "unknown"
)

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrUnknownFormat      = errors.New("unknown subtitle format")
)

// parses decoded subtitle content using the grammar for the given format
func Parse(content string, format Format) (*Document, error) {
	switch format {
	case FormatSRT:
		return parseSRT(content), nil
	case FormatVTT:
		return parseVTT(content)
	default:
		return nil, ErrUnknownFormat
	}
}
