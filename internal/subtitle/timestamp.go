package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// SRT separates milliseconds with a comma, VTT with a dot; both use
// zero-padded hours/minutes/seconds, hours may grow past two digits
var (
	srtTimestampRegex = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)
	vttTimestampRegex = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})\.(\d{3})$`)
)

// parses a single timestamp using the grammar for the given format
func ParseTimestamp(s string, format Format) (time.Duration, error) {
	var re *regexp.Regexp
	switch format {
	case FormatSRT:
		re = srtTimestampRegex
	case FormatVTT:
		re = vttTimestampRegex
	default:
		return 0, ErrUnknownFormat
	}

	matches := re.FindStringSubmatch(s)
	if len(matches) != 5 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}

	return parseClockTime(matches[1], matches[2], matches[3], matches[4])
}

// renders the inverse of ParseTimestamp
func FormatTimestamp(d time.Duration, format Format) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	sep := ","
	if format == FormatVTT {
		sep = "."
	}

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, seconds, sep, millis)
}

func parseClockTime(
	hours, minutes, seconds, millis string,
) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
