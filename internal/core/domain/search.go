package domain

import "fmt"

const (
	// MaxResults caps the number of results a search returns.
	MaxResults = 20

	// MinScore is the raw score floor; weaker best matches are dropped.
	MinScore = 0.2
)

// MatchType classifies how a query matched a string.
type MatchType string

// Match kinds, strongest first.
const (
	// MatchExact means the target equals the query.
	MatchExact MatchType = "exact"

	// MatchPrefix means the target starts with the query.
	MatchPrefix MatchType = "prefix"

	// MatchWordStart means the query spells out the starts of successive
	// words, e.g. "ws" against "web server".
	MatchWordStart MatchType = "word-start"

	// MatchSubstring means the query occurs at a word boundary.
	MatchSubstring MatchType = "substring"

	// MatchFuzzy means the query characters occur in order.
	MatchFuzzy MatchType = "fuzzy"
)

// Score returns the raw score for the match kind, or 0 if unknown.
func (t MatchType) Score() float64 {
	switch t {
	case MatchExact:
		return 1.0
	case MatchPrefix:
		return 0.9
	case MatchWordStart:
		return 0.8
	case MatchSubstring:
		return 0.6
	case MatchFuzzy:
		return 0.3
	default:
		return 0
	}
}

// String returns the string representation.
func (t MatchType) String() string {
	return string(t)
}

// MatchOutcome is the result of classifying one (query, target) pair.
type MatchOutcome struct {
	// Type is the match kind.
	Type MatchType

	// Score is the raw match strength in (0, 1].
	Score float64
}

// RankedResult is a single search hit.
type RankedResult struct {
	// Entry is the matched index entry.
	Entry IndexEntry `json:"entry"`

	// Score is the raw match score multiplied by the category weight.
	Score float64 `json:"score"`

	// MatchedText is the alias that produced the match.
	// Empty when the canonical name matched.
	MatchedText string `json:"matchedText,omitempty"`

	// MatchType is the kind of the winning match.
	MatchType MatchType `json:"matchType"`
}

// SearchOptions configures a search call.
type SearchOptions struct {
	// Limit is the maximum number of results. Values <= 0 or above
	// MaxResults mean MaxResults.
	Limit int

	// MinQueryLength is the minimum trimmed query length in runes.
	// Shorter queries return no results.
	MinQueryLength int

	// Categories restricts the search to entries in these categories.
	Categories []Category
}

// EffectiveLimit returns the limit clamped to (0, MaxResults].
func (o SearchOptions) EffectiveLimit() int {
	if o.Limit <= 0 || o.Limit > MaxResults {
		return MaxResults
	}
	return o.Limit
}

// DescribeMatch returns the annotation shown next to a result that
// matched via an alias, or "" when the name matched.
func DescribeMatch(matchedText string) string {
	if matchedText == "" {
		return ""
	}
	return fmt.Sprintf("aka %q", matchedText)
}

// ResultGroup is a run of results sharing a category.
type ResultGroup struct {
	Category Category
	Results  []RankedResult
}

// GroupByCategory groups results for display. Groups are ordered crate,
// book, std, then the remaining categories by name; results keep their
// rank order within a group.
func GroupByCategory(results []RankedResult) []ResultGroup {
	if len(results) == 0 {
		return nil
	}

	byCat := make(map[Category][]RankedResult)
	var cats []Category
	for i := range results {
		c := results[i].Entry.Category
		if _, ok := byCat[c]; !ok {
			cats = append(cats, c)
		}
		byCat[c] = append(byCat[c], results[i])
	}
	sortCategories(cats)

	groups := make([]ResultGroup, 0, len(cats))
	for _, c := range cats {
		groups = append(groups, ResultGroup{Category: c, Results: byCat[c]})
	}
	return groups
}
