package naming

// ============================================================================
// Suggestion Tuning
// ============================================================================

// DefaultSuggestionLimit is the number of "did you mean" names returned
const DefaultSuggestionLimit = 3

// MinFuzzyQueryLength is the shortest query that is compared by edit distance.
// Shorter queries only match by prefix or substring.
const MinFuzzyQueryLength = 3

// Suggestion scores. Higher ranks first.
const (
	ScorePrefix    = 0.9
	ScoreSubstring = 0.8
	ScoreFuzzyBase = 0.72
	ScorePerEdit   = 0.08
)

// ============================================================================
// Error Messages
// ============================================================================

// ErrFmtItemNotFound is used with domain.ErrItemNotFound
const ErrFmtItemNotFound = "%w: '%s' in %s"

// ErrFmtDidYouMean is appended when suggestions exist
const ErrFmtDidYouMean = " (did you mean: %s?)"
