package field

import (
	"strings"
	"testing"

	"github.com/atinylittleshell/suggestfield/internal/suggest"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInputLine(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())
	b := NewBufferWithText("apple")
	b.SetPos(2)

	assert.Equal(t, "> apple", ansi.Strip(r.RenderInputLine("> ", b, true)))
	assert.Equal(t, "> apple", ansi.Strip(r.RenderInputLine("> ", b, false)))

	b.CursorEnd()
	assert.Equal(t, "> apple ", ansi.Strip(r.RenderInputLine("> ", b, true)), "the cursor sits on a space at the end")
}

func TestRenderSuggestions(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())
	suggestions := suggest.Match([]string{"apple", "apricot"}, "ap", 2, 10)

	assert.Empty(t, r.RenderSuggestions(nil, suggest.NoSelection))

	out := ansi.Strip(r.RenderSuggestions(suggestions, 1))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4, "two rows and two borders")
	assert.Contains(t, lines[1], "  apple")
	assert.Contains(t, lines[2], "› apricot")
}

func TestRenderSuggestionsTruncatesLongRows(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())
	r.SetWidth(12)
	suggestions := suggest.Match([]string{"a very long suggestion"}, "very", 2, 10)

	out := ansi.Strip(r.RenderSuggestions(suggestions, suggest.NoSelection))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 12)
	}
	assert.Contains(t, out, "…")
}

func TestRenderAnnouncement(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())

	assert.Empty(t, r.RenderAnnouncement(""))
	assert.Equal(t, "♪ apple", ansi.Strip(r.RenderAnnouncement("apple")))
}

func TestSetWidthIgnoresNonPositive(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())
	r.SetWidth(0)
	assert.Equal(t, 80, r.Width())
	r.SetWidth(-3)
	assert.Equal(t, 80, r.Width())
}

func TestSuggestionRowAt(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())

	assert.Equal(t, -1, r.SuggestionRowAt(0, 2))
	assert.Equal(t, -1, r.SuggestionRowAt(1, 2))
	assert.Equal(t, 0, r.SuggestionRowAt(2, 2))
	assert.Equal(t, 1, r.SuggestionRowAt(3, 2))
	assert.Equal(t, -1, r.SuggestionRowAt(4, 2))
}

func TestRenderInputLineNeverExceedsWidth(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())
	r.SetWidth(10)
	b := NewBufferWithText("abcdefghijkl")

	// Cursor at the end: the tail and the cursor cell stay visible.
	line := ansi.Strip(r.RenderInputLine("> ", b, true))
	assert.Equal(t, "> fghijkl ", line)
	assert.Equal(t, 10, ansi.StringWidth(line))

	// Cursor at the start: the head is shown instead.
	b.CursorStart()
	assert.Equal(t, "> abcdefgh", ansi.Strip(r.RenderInputLine("> ", b, true)))

	// Cursor in the middle of a long line.
	b.SetPos(10)
	line = ansi.Strip(r.RenderInputLine("> ", b, true))
	assert.Equal(t, "> defghijk", line)

	unfocused := ansi.Strip(r.RenderInputLine("> ", b, false))
	assert.LessOrEqual(t, ansi.StringWidth(unfocused), 10)
	assert.Contains(t, unfocused, "…")
}

func TestVisibleRange(t *testing.T) {
	runes := []rune("abcdef")

	tests := []struct {
		name       string
		pos, width int
		start, end int
	}{
		{"everything fits", 6, 10, 0, 6},
		{"cursor at end scrolls", 6, 4, 3, 6},
		{"cursor at start", 0, 4, 0, 4},
		{"cursor in middle", 3, 2, 2, 4},
		{"one cell", 5, 1, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(runes, tt.pos, tt.width)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestRenderCommitted(t *testing.T) {
	r := NewRenderer(DefaultRenderConfig())

	assert.Empty(t, r.RenderCommitted(""))
	assert.Equal(t, "✓ apricot", ansi.Strip(r.RenderCommitted("apricot")))
}
