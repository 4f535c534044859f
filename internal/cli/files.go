package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// finds all .srt and .vtt files in a directory, sorted by name
func findSubtitleFiles(dir string) ([]string, error) {
	srtFiles, err := filepath.Glob(filepath.Join(dir, "*.srt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list subtitle files: %w", err)
	}
	vttFiles, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list subtitle files: %w", err)
	}

	files := append(srtFiles, vttFiles...)
	sort.Strings(files)
	return files, nil
}

func isSubtitlePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".srt" || ext == ".vtt"
}

// reads a subtitle file as UTF-8, falling back to Latin-1 when the bytes
// are not valid UTF-8
func readSubtitleFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode file: %w", err)
	}

	return string(decoded), nil
}
