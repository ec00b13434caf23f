// Package matching wraps the fuzzy matching engine behind the small surface
// the pick modes need.
package matching

import "github.com/sahilm/fuzzy"

// Match is a candidate annotated with the engine's ranking data.
type Match struct {
	Value          string
	Score          int
	MatchedIndexes []int
}

// Find matches query against candidates and returns at most limit matches,
// best first. An empty query matches nothing. A negative limit means no
// ceiling.
func Find(query string, candidates []string, limit int) []Match {
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, candidates)
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]Match, len(matches))
	for i, m := range matches {
		results[i] = Match{
			Value:          m.Str,
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}

	return results
}
