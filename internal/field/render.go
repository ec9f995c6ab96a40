package field

import (
	"strings"

	"github.com/atinylittleshell/suggestfield/internal/render"
	"github.com/atinylittleshell/suggestfield/internal/suggest"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// RenderConfig holds the styles used to draw the field.
type RenderConfig struct {
	PromptStyle       lipgloss.Style
	TextStyle         lipgloss.Style
	CursorStyle       lipgloss.Style
	PanelStyle        lipgloss.Style
	SuggestionStyle   lipgloss.Style
	HighlightStyle    lipgloss.Style
	SelectedStyle     lipgloss.Style
	AnnouncementStyle lipgloss.Style
	CommittedStyle    lipgloss.Style
}

// DefaultRenderConfig returns the standard styles.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PromptStyle:       lipgloss.NewStyle(),
		TextStyle:         lipgloss.NewStyle(),
		CursorStyle:       lipgloss.NewStyle().Reverse(true),
		PanelStyle:        render.PanelStyle,
		SuggestionStyle:   lipgloss.NewStyle(),
		HighlightStyle:    render.HighlightStyle,
		SelectedStyle:     render.SelectedStyle,
		AnnouncementStyle: render.DimStyle,
		CommittedStyle:    render.SuccessStyle,
	}
}

// Renderer draws the input line, the suggestion panel, the announcement
// line and the help footer.
type Renderer struct {
	config RenderConfig
	width  int
	help   help.Model
}

// NewRenderer creates a Renderer with an 80 column width.
func NewRenderer(config RenderConfig) *Renderer {
	h := help.New()
	h.Styles.ShortKey = config.AnnouncementStyle
	h.Styles.ShortDesc = config.AnnouncementStyle
	h.Styles.ShortSeparator = config.AnnouncementStyle

	return &Renderer{
		config: config,
		width:  80,
		help:   h,
	}
}

// SetWidth sets the terminal width. Non-positive widths are ignored.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
		r.help.Width = width
	}
}

// Width returns the terminal width.
func (r *Renderer) Width() int {
	return r.width
}

// RenderInputLine draws the prompt and the text, with a cursor when focused.
// The line never exceeds the width: a focused line scrolls to keep the
// cursor visible, an unfocused one is truncated.
func (r *Renderer) RenderInputLine(prompt string, buffer *Buffer, focused bool) string {
	var b strings.Builder
	b.WriteString(r.config.PromptStyle.Render(prompt))

	runes := []rune(buffer.Text())
	pos := buffer.Pos()
	avail := max(1, r.width-ansi.StringWidth(prompt))

	if !focused {
		b.WriteString(r.config.TextStyle.Render(truncate.StringWithTail(string(runes), uint(avail), "…")))
		return b.String()
	}

	start, end := visibleRange(runes, pos, avail)
	b.WriteString(r.config.TextStyle.Render(string(runes[start:pos])))
	if pos < len(runes) {
		b.WriteString(r.config.CursorStyle.Render(string(runes[pos])))
		b.WriteString(r.config.TextStyle.Render(string(runes[pos+1 : end])))
	} else {
		b.WriteString(r.config.CursorStyle.Render(" "))
	}
	return b.String()
}

// visibleRange returns the runes [start, end) that fit in width cells
// together with the cursor cell at pos. A cursor past the end takes one cell.
func visibleRange(runes []rune, pos, width int) (start, end int) {
	cell := func(i int) int {
		if i >= len(runes) {
			return 1
		}
		return max(1, ansi.StringWidth(string(runes[i])))
	}

	used := 0
	for i := 0; i <= pos; i++ {
		used += cell(i)
	}
	for used > width && start < pos {
		used -= cell(start)
		start++
	}

	end = pos + 1
	for end < len(runes) && used+cell(end) <= width {
		used += cell(end)
		end++
	}
	return start, min(end, len(runes))
}

// RenderSuggestions draws the suggestion panel. It returns "" for an empty list.
func (r *Renderer) RenderSuggestions(suggestions []suggest.Suggestion, selected int) string {
	if len(suggestions) == 0 {
		return ""
	}

	// Rows must fit inside the left and right border.
	contentWidth := uint(max(1, r.width-2))

	rows := make([]string, len(suggestions))
	for i, s := range suggestions {
		rows[i] = truncate.StringWithTail(r.renderRow(s, i == selected), contentWidth, "…")
	}

	return r.config.PanelStyle.
		Width(max(1, r.width-2)).
		Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderRow(s suggest.Suggestion, selected bool) string {
	before, match, after := s.Segments()

	textStyle := r.config.SuggestionStyle
	marker := "  "
	if selected {
		textStyle = r.config.SelectedStyle
		marker = r.config.SelectedStyle.Render(render.SymbolSelected) + " "
	}

	var b strings.Builder
	b.WriteString(marker)
	if before != "" {
		b.WriteString(textStyle.Render(before))
	}
	if match != "" {
		b.WriteString(r.config.HighlightStyle.Render(match))
	}
	if after != "" {
		b.WriteString(textStyle.Render(after))
	}
	return b.String()
}

// RenderAnnouncement draws the live region line. It returns "" when there
// is nothing to announce.
func (r *Renderer) RenderAnnouncement(text string) string {
	if text == "" {
		return ""
	}
	line := render.SymbolAnnouncement + " " + text
	return r.config.AnnouncementStyle.Render(truncate.StringWithTail(line, uint(r.width), "…"))
}

// RenderCommitted confirms the last committed suggestion. It returns "" when
// nothing has been committed since the last edit.
func (r *Renderer) RenderCommitted(value string) string {
	if value == "" {
		return ""
	}
	text := truncate.StringWithTail(value, uint(max(1, r.width-2)), "…")
	return render.StyledSymbol(render.SymbolSuccess) + " " + r.config.CommittedStyle.Render(text)
}

// RenderHelp draws the key help footer.
func (r *Renderer) RenderHelp(km *KeyMap) string {
	return r.help.View(km)
}

// RenderFullView draws everything below and including the input line.
// The list comes straight after the input line so SuggestionRowAt holds.
func (r *Renderer) RenderFullView(prompt string, buffer *Buffer, focused bool, f *suggest.Field, committed string, km *KeyMap) string {
	parts := []string{r.RenderInputLine(prompt, buffer, focused)}

	if f.Visible() {
		parts = append(parts, r.RenderSuggestions(f.Suggestions(), f.Selected()))
	}
	if line := r.RenderCommitted(committed); line != "" {
		parts = append(parts, line)
	}
	if line := r.RenderAnnouncement(f.Announcement()); line != "" {
		parts = append(parts, line)
	}
	if km != nil {
		parts = append(parts, r.RenderHelp(km))
	}

	return strings.Join(parts, "\n")
}

// SuggestionRowAt maps a screen row to a suggestion index, assuming the view
// starts at the top of the screen. It returns -1 for rows outside the list.
func (r *Renderer) SuggestionRowAt(y, count int) int {
	// Row 0 is the input line, which never wraps, and row 1 the top border.
	index := y - 2
	if index < 0 || index >= count {
		return -1
	}
	return index
}
