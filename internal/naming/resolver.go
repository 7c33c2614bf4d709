package naming

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// Resolver handles item name resolution and "did you mean" suggestions
type Resolver interface {
	// Resolve converts a user supplied name to the catalog name, ignoring case
	Resolve(activity domain.ActivityKey, name string) (canonical string, ok bool)

	// Suggest returns up to limit catalog names close to name
	Suggest(activity domain.ActivityKey, name string, limit int) []string

	// ResolveOrError resolves a name or returns ErrItemNotFound with suggestions
	ResolveOrError(activity domain.ActivityKey, name string) (string, error)

	// RegisterItem registers an item for name resolution
	RegisterItem(activity domain.ActivityKey, name string)
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: activity -> lower(name) -> catalog name
	byActivity map[domain.ActivityKey]map[string]string
}

type candidate struct {
	name  string
	score float64
}

// NewResolver creates a resolver seeded with every item of the given activities
func NewResolver(activities []*domain.Activity) Resolver {
	r := &resolver{byActivity: make(map[domain.ActivityKey]map[string]string)}
	for _, activity := range activities {
		for _, item := range activity.Items {
			r.RegisterItem(activity.Key, item.Name)
		}
	}
	return r
}

// RegisterItem adds a lower-case name mapping for an activity
func (r *resolver) RegisterItem(activity domain.ActivityKey, name string) {
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, ok := r.byActivity[activity]
	if !ok {
		names = make(map[string]string)
		r.byActivity[activity] = names
	}
	names[normalize(name)] = name
}

// Resolve converts a user supplied name to the catalog name
func (r *resolver) Resolve(activity domain.ActivityKey, name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, ok := r.byActivity[activity][normalize(name)]
	return canonical, ok
}

// ResolveOrError resolves a name or reports the closest catalog names
func (r *resolver) ResolveOrError(activity domain.ActivityKey, name string) (string, error) {
	if canonical, ok := r.Resolve(activity, name); ok {
		return canonical, nil
	}

	err := fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, name, activity)
	if suggestions := r.Suggest(activity, name, DefaultSuggestionLimit); len(suggestions) > 0 {
		err = fmt.Errorf("%w"+ErrFmtDidYouMean, err, strings.Join(suggestions, ", "))
	}
	return "", err
}

// Suggest ranks catalog names by prefix, substring and edit distance
func (r *resolver) Suggest(activity domain.ActivityKey, name string, limit int) []string {
	query := normalize(name)
	if query == "" || limit <= 0 {
		return nil
	}

	r.mu.RLock()
	var cands []candidate
	for lower, canonical := range r.byActivity[activity] {
		if score, ok := scoreMatch(query, lower); ok {
			cands = append(cands, candidate{name: canonical, score: score})
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].name < cands[j].name
		}
		return cands[i].score > cands[j].score
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.name)
	}
	return out
}

// scoreMatch reports how closely query matches a lower-case catalog name
func scoreMatch(query, lower string) (float64, bool) {
	switch {
	case query == lower:
		return 1, true
	case strings.HasPrefix(lower, query):
		return ScorePrefix, true
	case strings.Contains(lower, query):
		return ScoreSubstring, true
	}

	if len(query) < MinFuzzyQueryLength {
		return 0, false
	}
	dist := levenshtein.ComputeDistance(query, lower)
	if dist > levenshteinLimit(len(lower)) {
		return 0, false
	}
	return ScoreFuzzyBase - ScorePerEdit*float64(dist), true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
