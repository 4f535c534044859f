package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"subgrep/internal/search"
)

var (
	unsafeTermRegex   = regexp.MustCompile(`[^\w\s-]`)
	termSpacingRegex  = regexp.MustCompile(`[-\s]+`)
)

// Save writes the full result listing to
// <outputDir>/search_results_<term>.txt and returns the file path.
func Save(rep *search.Report, term, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	safeTerm := unsafeTermRegex.ReplaceAllString(term, "")
	safeTerm = strings.TrimSpace(safeTerm)
	safeTerm = termSpacingRegex.ReplaceAllString(safeTerm, "_")

	outputFile := filepath.Join(
		outputDir,
		fmt.Sprintf("search_results_%s.txt", safeTerm),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Search Results for %q\n", term))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf(
		"Total matches found: %d\n\n", len(rep.Results),
	))

	if len(rep.Results) == 0 {
		sb.WriteString("No matches found.\n")
	}

	currentFile := ""
	for _, result := range rep.Results {
		if result.Path != currentFile {
			currentFile = result.Path
			sb.WriteString(fmt.Sprintf(
				"File: %s\n", filepath.Base(result.Path),
			))
			sb.WriteString(strings.Repeat("-", 40) + "\n")
		}

		sb.WriteString(fmt.Sprintf("Subtitle #%d\n", result.Entry.Index))
		sb.WriteString(fmt.Sprintf("Time: %s\n", timeRange(result.Entry)))
		sb.WriteString(fmt.Sprintf("Text: %s\n\n", result.Entry.Text))
	}

	if err := os.WriteFile(
		outputFile, []byte(sb.String()), 0644,
	); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}

	return outputFile, nil
}
