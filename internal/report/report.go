package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"subgrep/internal/search"
	"subgrep/internal/subtitle"
)

// Print writes search results to w, grouped per file. When table is true
// the results are rendered as a rounded table, otherwise as a plain
// listing suitable for pipes and files.
func Print(w io.Writer, rep *search.Report, term string, table bool) {
	if len(rep.Results) == 0 {
		fmt.Fprintf(w, "\nNo matches found for %q\n", term)
		printDiagnostics(w, rep)
		return
	}

	fmt.Fprintf(w, "\nFound %d matches for %q:\n", len(rep.Results), term)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if table {
		printTable(w, rep)
	} else {
		printListing(w, rep)
	}

	printDiagnostics(w, rep)
}

func printListing(w io.Writer, rep *search.Report) {
	currentFile := ""
	for _, result := range rep.Results {
		if result.Path != currentFile {
			currentFile = result.Path
			fmt.Fprintf(w, "\nFile: %s\n", filepath.Base(result.Path))
			fmt.Fprintln(w, strings.Repeat("-", 40))
		}

		fmt.Fprintf(w, "  Subtitle #%d\n", result.Entry.Index)
		fmt.Fprintf(w, "  Time: %s\n", timeRange(result.Entry))
		fmt.Fprintf(w, "  Text: %s\n\n", result.Entry.Text)
	}
}

func printTable(w io.Writer, rep *search.Report) {
	rows := make([][]string, 0, len(rep.Results))
	for _, result := range rep.Results {
		rows = append(rows, []string{
			filepath.Base(result.Path),
			fmt.Sprintf("%d", result.Entry.Index),
			timeRange(result.Entry),
			result.Entry.Text,
		})
	}
	fmt.Fprintln(w, renderTable([]string{"File", "#", "Time", "Text"}, rows))
}

func printDiagnostics(w io.Writer, rep *search.Report) {
	if rep.Removed > 0 {
		fmt.Fprintf(
			w,
			"Removed %d duplicate/similar matches\n",
			rep.Removed,
		)
	}
	for _, failure := range rep.Failed {
		fmt.Fprintf(
			w,
			"Skipped %s: %v\n",
			filepath.Base(failure.Path),
			failure.Err,
		)
	}
}

// results files always carry SRT-style comma timestamps, whatever the
// source format was
func timeRange(entry subtitle.Entry) string {
	return fmt.Sprintf(
		"%s --> %s",
		subtitle.FormatTimestamp(entry.StartTime, subtitle.FormatSRT),
		subtitle.FormatTimestamp(entry.EndTime, subtitle.FormatSRT),
	)
}
