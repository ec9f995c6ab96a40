package suggest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(suggestions []Suggestion) []string {
	result := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, s.Text)
	}
	return result
}

func TestMatch(t *testing.T) {
	fruit := []string{"apple", "apricot", "banana"}

	tests := []struct {
		name      string
		source    []string
		text      string
		minLength int
		expected  []string
	}{
		{"prefix of two entries", fruit, "ap", 2, []string{"apple", "apricot"}},
		{"case insensitive", fruit, "AP", 2, []string{"apple", "apricot"}},
		{"mid-word text does not match", fruit, "an", 2, nil},
		{"below min length", fruit, "a", 2, nil},
		{"no matches", fruit, "zz", 2, nil},
		{"match after a space", []string{"green apple", "pineapple"}, "app", 2, []string{"green apple"}},
		{"match after punctuation", []string{"north-west", "northwest"}, "west", 2, []string{"north-west"}},
		{"zero min length with empty text", []string{"apple", "--"}, "", 0, []string{"apple"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(tt.source, tt.text, tt.minLength, 10)
			if tt.expected == nil {
				assert.Empty(t, result)
				return
			}
			assert.Equal(t, tt.expected, texts(result))
		})
	}
}

func TestMatchNegativeMinLength(t *testing.T) {
	source := []string{"apple", "--", "banana", "cherry"}

	// Empty text still matches every entry with a word start.
	result := Match(source, "", -1, 10)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, texts(result))
	for _, s := range result {
		before, match, after := s.Segments()
		assert.Empty(t, before)
		assert.Empty(t, match)
		assert.Equal(t, s.Text, after)
	}

	// The cap still applies.
	assert.Equal(t, []string{"apple", "banana"}, texts(Match(source, "", -1, 1)))

	assert.Equal(t, []string{"banana"}, texts(Match(source, "b", -5, 10)))
}

func TestMatchEveryResultContainsText(t *testing.T) {
	source := []string{"New York", "Newark", "new delhi", "Kew Gardens", "renewal", "NEWCASTLE"}

	result := Match(source, "new", 2, 10)

	assert.Equal(t, []string{"New York", "Newark", "new delhi", "NEWCASTLE"}, texts(result))
	for _, s := range result {
		_, match, _ := s.Segments()
		assert.True(t, strings.EqualFold(match, "new"), "highlight should cover the typed text in %q", s.Text)
	}
}

func TestMatchReturnsOneMoreThanMaxResults(t *testing.T) {
	source := make([]string, 20)
	for i := range source {
		source[i] = fmt.Sprintf("item %d", i)
	}

	result := Match(source, "item", 2, 3)
	assert.Equal(t, []string{"item 0", "item 1", "item 2", "item 3"}, texts(result))

	result = Match(source, "item", 2, 0)
	assert.Equal(t, []string{"item 0"}, texts(result))

	result = Match(source, "item", 2, -1)
	assert.Empty(t, result)
}

func TestMatchTreatsMetacharactersLiterally(t *testing.T) {
	source := []string{"c++ primer", "cpp", "c.c", "cxc"}

	assert.NotPanics(t, func() {
		assert.Equal(t, []string{"c++ primer"}, texts(Match(source, "c++", 1, 10)))
	})
	assert.Equal(t, []string{"c.c"}, texts(Match(source, "c.c", 1, 10)))

	// An unbalanced group would not compile if the text were used as a pattern.
	assert.NotPanics(t, func() {
		// "(" only follows a boundary when a word character precedes it.
		assert.Equal(t, []string{"a(b"}, texts(Match([]string{"(paren)", "a(b"}, "(", 1, 10)))
	})
	assert.Equal(t, []string{"a[1]"}, texts(Match([]string{"a[1]", "a1"}, "a[", 1, 10)))
}

func TestMatchHighlightsFirstOccurrence(t *testing.T) {
	result := Match([]string{"banana bandana"}, "ban", 2, 10)
	require.Len(t, result, 1)

	assert.Equal(t, 0, result[0].MatchStart)
	assert.Equal(t, 3, result[0].MatchEnd)

	before, match, after := result[0].Segments()
	assert.Equal(t, "", before)
	assert.Equal(t, "ban", match)
	assert.Equal(t, "ana bandana", after)
}

func TestMatchKeepsOriginalCase(t *testing.T) {
	result := Match([]string{"United Kingdom"}, "king", 2, 10)
	require.Len(t, result, 1)

	before, match, after := result[0].Segments()
	assert.Equal(t, "United ", before)
	assert.Equal(t, "King", match)
	assert.Equal(t, "dom", after)
	assert.Equal(t, "United Kingdom", result[0].Text)
}

func TestSegmentsWithInvalidSpan(t *testing.T) {
	s := Suggestion{Text: "abc", MatchStart: 2, MatchEnd: 10}
	before, match, after := s.Segments()
	assert.Equal(t, "abc", before)
	assert.Empty(t, match)
	assert.Empty(t, after)
}
