package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/window"
)

// TestLongestUniqueLength_Table covers the classic vectors.
func TestLongestUniqueLength_Table(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"aaaa", 1},
		{"abcabcbb", 3},
		{"pwwkew", 3},
		{"abcaabcd", 4},
		{"abba", 2},
		{"dvdf", 3},
		{"héllo wörld", 7},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			assert.Equal(t, tc.want, window.LongestUniqueLength(tc.s))
		})
	}
}

// TestLongestUnique_Span checks the reported span against the text itself.
func TestLongestUnique_Span(t *testing.T) {
	inputs := []string{"", "a", "abcabcbb", "pwwkew", "abcaabcd", "tmmzuxt", "日本日本語"}
	for _, s := range inputs {
		span := window.LongestUnique(s)
		runes := []rune(s)

		assert.Equal(t, window.LongestUniqueLength(s), span.Len(), "input %q", s)
		assert.LessOrEqual(t, span.Len(), len(runes), "input %q", s)
		assert.True(t, distinct(runes[span.Start:span.End]), "span %v of %q repeats", span, s)
		assert.Equal(t, bruteForce(runes), span.Len(), "input %q", s)
	}
}

// TestLongestUnique_LeftMost checks that ties keep the earliest window.
func TestLongestUnique_LeftMost(t *testing.T) {
	assert.Equal(t, window.Span{Start: 0, End: 3}, window.LongestUnique("abcabc"))
	assert.Equal(t, window.Span{Start: 0, End: 1}, window.LongestUnique("aaaa"))
}

func distinct(rs []rune) bool {
	seen := make(map[rune]bool, len(rs))
	for _, r := range rs {
		if seen[r] {
			return false
		}
		seen[r] = true
	}

	return true
}

func bruteForce(rs []rune) int {
	best := 0
	for i := range rs {
		for j := i; j <= len(rs); j++ {
			if distinct(rs[i:j]) && j-i > best {
				best = j - i
			}
		}
	}

	return best
}
