package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// entryMatch is the best match found for a single entry.
type entryMatch struct {
	outcome     domain.MatchOutcome
	matchedText string
}

// Rank searches index for query and returns at most domain.MaxResults
// results ordered by descending score. Each entry is scored by its best
// match over the name and every alias, weighted by category. Entries whose
// raw score falls below domain.MinScore are dropped, and only the first
// kept entry for each id survives.
//
// Rank is a pure function: it never mutates index and returns an empty
// slice for an empty query or index.
func Rank(index []domain.IndexEntry, query string) []domain.RankedResult {
	query = strings.TrimSpace(query)
	if query == "" || len(index) == 0 {
		return []domain.RankedResult{}
	}

	results := make([]domain.RankedResult, 0, domain.MaxResults)
	seen := make(map[string]struct{})

	for i := range index {
		entry := &index[i]

		m, ok := bestMatch(query, entry)
		if !ok || m.outcome.Score < domain.MinScore {
			continue
		}

		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}

		results = append(results, domain.RankedResult{
			Entry:       *entry,
			Score:       m.outcome.Score * entry.Category.Weight(),
			MatchedText: m.matchedText,
			MatchType:   m.outcome.Type,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > domain.MaxResults {
		results = results[:domain.MaxResults]
	}
	return results
}

// bestMatch classifies query against the entry's name and then each alias.
// A later candidate only wins with a strictly higher score, so the name
// beats an alias of equal strength and earlier aliases beat later ones.
func bestMatch(query string, entry *domain.IndexEntry) (entryMatch, bool) {
	var best entryMatch
	found := false

	if o, ok := Classify(query, entry.Name); ok {
		best = entryMatch{outcome: o}
		found = true
	}

	for _, alias := range entry.Aliases {
		if alias == "" {
			continue
		}
		o, ok := Classify(query, alias)
		if !ok {
			continue
		}
		if !found || o.Score > best.outcome.Score {
			best = entryMatch{outcome: o, matchedText: alias}
			found = true
		}
	}

	return best, found
}
