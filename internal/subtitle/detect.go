package subtitle

import (
	"path/filepath"
	"strings"
)

// DetectFormat decides which grammar applies to a file. The extension wins
// when present; otherwise the first non-empty content line is inspected for
// the WEBVTT header, then a time-range separator anywhere in the content
// selects SRT.
func DetectFormat(path, content string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT
	case ".vtt":
		return FormatVTT
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		if trimmed == "" {
			continue
		}
		if isVTTHeader(trimmed) {
			return FormatVTT
		}
		break
	}

	if strings.Contains(content, "-->") {
		return FormatSRT
	}

	return FormatUnknown
}
