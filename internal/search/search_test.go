package search

import (
	"errors"
	"testing"

	"subgrep/internal/subtitle"
)

const srtFixture = `1
00:00:10,000 --> 00:00:12,000
so you should learn python today

2
00:00:11,500 --> 00:00:13,000
you should learn python today

3
00:10:00,000 --> 00:10:02,000
python came up once more
`

const vttFixture = `WEBVTT

00:00:05.000 --> 00:00:07.000
python in a vtt file
`

func TestSearchEmptyTerm(t *testing.T) {
	files := []File{{Path: "a.srt", Content: srtFixture}}

	_, err := Search(files, "", Options{})
	if !errors.Is(err, ErrEmptyTerm) {
		t.Errorf("expected ErrEmptyTerm, got %v", err)
	}
}

func TestSearchDedupeEnabled(t *testing.T) {
	files := []File{{Path: "a.srt", Content: srtFixture}}

	opts := Options{Dedup: DefaultDedupConfig()}
	rep, err := Search(files, "python", opts)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// entries 1 and 2 collapse, entry 3 is ten minutes away
	if len(rep.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(rep.Results))
	}
	if rep.Removed != 1 {
		t.Errorf("expected 1 removed duplicate, got %d", rep.Removed)
	}
	if rep.EntriesParsed["a.srt"] != 3 {
		t.Errorf(
			"expected 3 entries parsed, got %d",
			rep.EntriesParsed["a.srt"],
		)
	}
}

func TestSearchDedupeDisabled(t *testing.T) {
	files := []File{{Path: "a.srt", Content: srtFixture}}

	rep, err := Search(files, "python", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(rep.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(rep.Results))
	}
	for i, result := range rep.Results {
		if result.Entry.Index != i+1 {
			t.Errorf(
				"result %d: expected entry index %d, got %d",
				i, i+1, result.Entry.Index,
			)
		}
	}
}

func TestSearchCaseSensitivity(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
python is great
`
	files := []File{{Path: "a.srt", Content: content}}

	rep, err := Search(files, "PYTHON", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rep.Results) != 1 {
		t.Errorf(
			"case-insensitive: expected 1 result, got %d",
			len(rep.Results),
		)
	}

	rep, err = Search(files, "PYTHON", Options{CaseSensitive: true})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rep.Results) != 0 {
		t.Errorf(
			"case-sensitive: expected 0 results, got %d",
			len(rep.Results),
		)
	}
}

func TestSearchBatchContinuesPastBadFile(t *testing.T) {
	headerless := `00:00:01.000 --> 00:00:02.000
python without a header
`
	files := []File{
		{Path: "bad.vtt", Content: headerless},
		{Path: "good.vtt", Content: vttFixture},
	}

	rep, err := Search(files, "python", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(rep.Failed) != 1 {
		t.Fatalf("expected 1 failed file, got %d", len(rep.Failed))
	}
	if rep.Failed[0].Path != "bad.vtt" {
		t.Errorf("expected bad.vtt to fail, got %s", rep.Failed[0].Path)
	}
	if !errors.Is(rep.Failed[0].Err, subtitle.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", rep.Failed[0].Err)
	}

	if len(rep.Results) != 1 {
		t.Fatalf("expected 1 result from good.vtt, got %d", len(rep.Results))
	}
	if rep.Results[0].Path != "good.vtt" {
		t.Errorf("got result from %s", rep.Results[0].Path)
	}
}

func TestSearchUnknownFormatFile(t *testing.T) {
	files := []File{
		{Path: "mystery", Content: "not subtitles at all\n"},
		{Path: "a.srt", Content: srtFixture},
	}

	rep, err := Search(files, "python", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(rep.Failed) != 1 || rep.Failed[0].Path != "mystery" {
		t.Fatalf("expected mystery to fail, got %+v", rep.Failed)
	}
	if len(rep.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(rep.Results))
	}
}

func TestSearchPreservesInputFileOrder(t *testing.T) {
	files := []File{
		{Path: "z.vtt", Content: vttFixture},
		{Path: "a.srt", Content: srtFixture},
	}

	rep, err := Search(files, "python", Options{Concurrency: 2})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(rep.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(rep.Results))
	}
	if rep.Results[0].Path != "z.vtt" {
		t.Errorf("expected z.vtt first, got %s", rep.Results[0].Path)
	}
	for _, result := range rep.Results[1:] {
		if result.Path != "a.srt" {
			t.Errorf("unexpected file order: %s", result.Path)
		}
	}
}

func TestSearchFormatHint(t *testing.T) {
	// a path with no useful extension, but the caller knows the format
	files := []File{{
		Path:    "stream-captions",
		Content: vttFixture,
		Hint:    subtitle.FormatVTT,
	}}

	rep, err := Search(files, "python", Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rep.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(rep.Results))
	}
}
