package services

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// Classify reports how query matches target, trying the match kinds from
// strongest to weakest. The boolean is false when nothing matches; that is
// not an error, the pair simply contributes nothing.
//
// Both strings are lower-cased before comparison and otherwise used as is.
func Classify(query, target string) (domain.MatchOutcome, bool) {
	q := normalize(query)
	t := normalize(target)

	switch {
	case t == q:
		return outcome(domain.MatchExact), true
	case strings.HasPrefix(t, q):
		return outcome(domain.MatchPrefix), true
	case matchWordStarts(q, t):
		return outcome(domain.MatchWordStart), true
	case matchBoundarySubstring(q, t):
		return outcome(domain.MatchSubstring), true
	case matchSubsequence(q, t):
		return outcome(domain.MatchFuzzy), true
	}
	return domain.MatchOutcome{}, false
}

func outcome(t domain.MatchType) domain.MatchOutcome {
	return domain.MatchOutcome{Type: t, Score: t.Score()}
}

// normalize lower-cases s. A Caser keeps internal state, so one is built
// per call to keep Classify safe for concurrent use.
func normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// isWordSeparator reports whether r splits words for word-start matching.
func isWordSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', '-', '_':
		return true
	}
	return false
}

// matchWordStarts aligns the query against the leading characters of the
// target's words. Each query character must extend the prefix consumed in
// the current word; when it cannot, it must start the next word. Words may
// not be skipped.
func matchWordStarts(q, t string) bool {
	words := strings.FieldsFunc(t, isWordSeparator)
	if q == "" || len(words) == 0 {
		return false
	}

	w := 0   // current word
	pos := 0 // bytes consumed in words[w]
	for _, r := range q {
		if pos < len(words[w]) {
			next, size := utf8.DecodeRuneInString(words[w][pos:])
			if next == r {
				pos += size
				continue
			}
		}
		if pos == 0 {
			// The first character of a word did not match.
			return false
		}
		w++
		if w == len(words) {
			return false
		}
		first, size := utf8.DecodeRuneInString(words[w])
		if first != r {
			return false
		}
		pos = size
	}
	return true
}

// matchBoundarySubstring reports whether q occurs in t at the start of t
// or right after a character outside [a-z0-9]. This keeps "time" from
// matching inside "runtime".
func matchBoundarySubstring(q, t string) bool {
	if q == "" {
		return false
	}
	pos := 0
	for pos < len(t) {
		idx := strings.Index(t[pos:], q)
		if idx < 0 {
			return false
		}
		at := pos + idx
		if at == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(t[:at])
		if !isASCIIAlnum(prev) {
			return true
		}
		_, size := utf8.DecodeRuneInString(t[at:])
		pos = at + size
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// matchSubsequence reports whether every character of q appears in t in
// order, each found strictly after the previous one.
func matchSubsequence(q, t string) bool {
	if q == "" {
		return false
	}
	pos := 0
	for _, r := range q {
		idx := strings.IndexRune(t[pos:], r)
		if idx < 0 {
			return false
		}
		_, size := utf8.DecodeRuneInString(t[pos+idx:])
		pos += idx + size
	}
	return true
}
