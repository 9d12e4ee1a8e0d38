package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   domain.MatchType
	}{
		{"exact", "tokio", "tokio", domain.MatchExact},
		{"exact ignores case", "TOKIO", "Tokio", domain.MatchExact},
		{"exact unicode case", "ÉCOLE", "école", domain.MatchExact},
		{"prefix", "tok", "tokio", domain.MatchPrefix},
		{"prefix across separator", "async-r", "async-runtime", domain.MatchPrefix},
		{"word starts with space", "ws", "web server", domain.MatchWordStart},
		{"word starts with hyphen", "ar", "async-runtime", domain.MatchWordStart},
		{"word starts with underscore", "hm", "hash_map", domain.MatchWordStart},
		{"word starts continue inside word", "wse", "web server", domain.MatchWordStart},
		{"word starts collapse separator runs", "ab", "a -_ b", domain.MatchWordStart},
		{"substring after space", "time", "bed time", domain.MatchSubstring},
		{"substring after hyphen", "run", "async-runtime", domain.MatchSubstring},
		{"substring after punctuation", "time", "std::time", domain.MatchSubstring},
		{"substring after digit boundary char", "8", "utf-8", domain.MatchSubstring},
		{"substring after non-ascii letter", "x", "éx", domain.MatchSubstring},
		{"substring skips unbounded occurrence", "time", "runtime time", domain.MatchSubstring},
		{"fuzzy inside word", "map", "hashmap", domain.MatchFuzzy},
		{"fuzzy when boundary rejected", "time", "runtime", domain.MatchFuzzy},
		{"fuzzy after digit", "2", "utf2", domain.MatchFuzzy},
		{"fuzzy across words", "sr", "web server", domain.MatchFuzzy},
		{"fuzzy alias", "rt", "async-runtime", domain.MatchFuzzy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.query, tt.target)

			require.True(t, ok, "expected %q to match %q", tt.query, tt.target)
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, tt.want.Score(), got.Score)
		})
	}
}

func TestClassify_NoMatch(t *testing.T) {
	tests := []struct {
		query  string
		target string
	}{
		{"rt", "tokio"},
		{"xyz", "serde"},
		{"tokio", "tok"},
		{"ba", "ab"},
		{"a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.target, func(t *testing.T) {
			_, ok := Classify(tt.query, tt.target)
			assert.False(t, ok)
		})
	}
}

func TestClassify_SelfIsExact(t *testing.T) {
	for _, s := range []string{"", "a", "tokio", "Async Runtime", "std::collections::HashMap", "日本語", "  spaced  "} {
		t.Run(s, func(t *testing.T) {
			got, ok := Classify(s, s)

			require.True(t, ok)
			assert.Equal(t, domain.MatchExact, got.Type)
			assert.Equal(t, 1.0, got.Score)
		})
	}
}

func TestClassify_PrefixNeverWeaker(t *testing.T) {
	queries := []string{"t", "to", "Tok", "async", "std::"}
	suffixes := []string{"", "io", "-runtime", " thing", "::time"}

	for _, q := range queries {
		for _, suffix := range suffixes {
			target := q + suffix
			got, ok := Classify(q, target)

			require.True(t, ok, "%q vs %q", q, target)
			assert.GreaterOrEqual(t, got.Score, domain.MatchPrefix.Score(), "%q vs %q", q, target)
		}
	}
}

func TestClassify_RuntimeIsNotABoundarySubstring(t *testing.T) {
	got, ok := Classify("time", "runtime")

	require.True(t, ok)
	assert.NotEqual(t, domain.MatchSubstring, got.Type)
	assert.Less(t, got.Score, domain.MatchSubstring.Score())
}

func TestClassify_Deterministic(t *testing.T) {
	first, firstOK := Classify("ws", "Web Server")
	for i := 0; i < 10; i++ {
		got, ok := Classify("ws", "Web Server")
		assert.Equal(t, firstOK, ok)
		assert.Equal(t, first, got)
	}
}

func TestMatchWordStarts(t *testing.T) {
	assert.True(t, matchWordStarts("ws", "web server"))
	assert.True(t, matchWordStarts("webs", "web server"))
	assert.False(t, matchWordStarts("run", "async-runtime"), "words may not be skipped")
	assert.False(t, matchWordStarts("wx", "web server"))
	assert.False(t, matchWordStarts("wss", "web server"))
	assert.False(t, matchWordStarts("", "web server"))
	assert.False(t, matchWordStarts("w", "---"))
}

func TestMatchBoundarySubstring(t *testing.T) {
	assert.True(t, matchBoundarySubstring("time", "time"))
	assert.True(t, matchBoundarySubstring("time", "bed time"))
	assert.True(t, matchBoundarySubstring("time", "a.time"))
	assert.False(t, matchBoundarySubstring("time", "runtime"))
	assert.False(t, matchBoundarySubstring("time", "runtime2time"))
	assert.False(t, matchBoundarySubstring("", "anything"))
}

func TestMatchSubsequence(t *testing.T) {
	assert.True(t, matchSubsequence("hmp", "hashmap"))
	assert.True(t, matchSubsequence("日語", "日本語"))
	assert.False(t, matchSubsequence("aa", "a"), "each character needs its own position")
	assert.False(t, matchSubsequence("pmh", "hashmap"))
	assert.False(t, matchSubsequence("", "hashmap"))
}

func BenchmarkClassify(b *testing.B) {
	target := strings.Repeat("async runtime ", 8)
	for i := 0; i < b.N; i++ {
		Classify("rtm", target)
	}
}
