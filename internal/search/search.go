package search

import (
	"errors"
	"sync"

	"subgrep/internal/subtitle"
)

var ErrEmptyTerm = errors.New("search term cannot be empty")

// one subtitle file already decoded to text; the orchestrator performs no
// file I/O itself
type File struct {
	Path    string
	Content string
	Hint    subtitle.Format // FormatUnknown means detect from path/content
}

type Options struct {
	CaseSensitive bool
	Dedup         DedupConfig
	Concurrency   int // parallel file workers, <= 0 uses a default
}

// a file the batch could not process
type FileError struct {
	Path string
	Err  error
}

// aggregate outcome of one search invocation
type Report struct {
	Results       []Result
	EntriesParsed map[string]int
	SkippedBlocks map[string]int
	Failed        []FileError
	Removed       int
}

type fileOutcome struct {
	parsed  int
	skipped int
	results []Result
	err     error
}

// Search runs detect -> parse -> match -> dedupe across the batch. Files
// are processed independently on a bounded worker pool and merged back in
// input order; a file that fails detection or parsing is recorded in
// Failed and the batch continues.
func Search(files []File, term string, opts Options) (*Report, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	outcomes := make([]fileOutcome, len(files))

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	workChan := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workChan {
				outcomes[idx] = searchFile(
					files[idx], term, opts.CaseSensitive,
				)
			}
		}()
	}

	for i := range files {
		workChan <- i
	}
	close(workChan)
	wg.Wait()

	report := &Report{
		EntriesParsed: make(map[string]int),
		SkippedBlocks: make(map[string]int),
	}

	var matches []Result
	for i, outcome := range outcomes {
		if outcome.err != nil {
			report.Failed = append(report.Failed, FileError{
				Path: files[i].Path,
				Err:  outcome.err,
			})
			continue
		}
		report.EntriesParsed[files[i].Path] = outcome.parsed
		report.SkippedBlocks[files[i].Path] = outcome.skipped
		matches = append(matches, outcome.results...)
	}

	report.Results = Dedupe(matches, opts.Dedup)
	report.Removed = len(matches) - len(report.Results)

	return report, nil
}

func searchFile(file File, term string, caseSensitive bool) fileOutcome {
	format := file.Hint
	if format == "" || format == subtitle.FormatUnknown {
		format = subtitle.DetectFormat(file.Path, file.Content)
	}
	if format == subtitle.FormatUnknown {
		return fileOutcome{err: subtitle.ErrUnknownFormat}
	}

	doc, err := subtitle.Parse(file.Content, format)
	if err != nil {
		return fileOutcome{err: err}
	}

	var results []Result
	for _, entry := range Match(doc.Entries, term, caseSensitive) {
		results = append(results, Result{Path: file.Path, Entry: entry})
	}

	return fileOutcome{
		parsed:  len(doc.Entries),
		skipped: doc.SkippedBlocks,
		results: results,
	}
}
