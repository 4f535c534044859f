package search

import "math"

// Heuristic floor for the strict policy: hits almost on top of each other
// are duplicates even at moderate similarity. Carried over as documented
// defaults, not tuned further.
const (
	nearTimeWindowSeconds = 2.0
	nearSimilarityScale   = 0.6
)

// controls duplicate suppression of rolling/overlapping captions
type DedupConfig struct {
	Enabled             bool
	SimilarityThreshold float64
	TimeWindow          float64 // seconds
	Aggressive          bool
}

func DefaultDedupConfig() DedupConfig {
	return DedupConfig{
		Enabled:             true,
		SimilarityThreshold: 0.8,
		TimeWindow:          5.0,
		Aggressive:          false,
	}
}

// Dedupe walks matches in order and drops every match that duplicates an
// earlier kept match from the same file. Strict policy requires similarity
// and time proximity together (or near-identical start times at moderate
// similarity); aggressive policy drops on either condition alone.
// Matches from different files never suppress each other.
func Dedupe(matches []Result, cfg DedupConfig) []Result {
	if !cfg.Enabled || len(matches) == 0 {
		return matches
	}

	kept := make([]Result, 0, len(matches))
	for _, current := range matches {
		if !isDuplicate(current, kept, cfg) {
			kept = append(kept, current)
		}
	}

	return kept
}

func isDuplicate(current Result, kept []Result, cfg DedupConfig) bool {
	for _, existing := range kept {
		if existing.Path != current.Path {
			continue
		}

		timeDiff := math.Abs(
			(current.Entry.StartTime - existing.Entry.StartTime).Seconds(),
		)
		similarity := Similarity(current.Entry.Text, existing.Entry.Text)

		if cfg.Aggressive {
			if similarity >= cfg.SimilarityThreshold ||
				timeDiff <= cfg.TimeWindow {
				return true
			}
			continue
		}

		if similarity >= cfg.SimilarityThreshold &&
			timeDiff <= cfg.TimeWindow {
			return true
		}
		if timeDiff <= nearTimeWindowSeconds &&
			similarity >= cfg.SimilarityThreshold*nearSimilarityScale {
			return true
		}
	}

	return false
}
