// Package suggest implements the state of an accessible suggest-as-you-type
// field: matching typed text against an in-memory candidate pool, tracking
// the selected suggestion, and keeping the live announcement text that
// assistive technology reads out.
//
// The package has no terminal dependency. A host (see internal/field) feeds
// it input events and renders what the accessors report.
package suggest

import (
	"go.uber.org/zap"
)

// DefaultInstructions is announced on focus when Options.Instructions is empty.
const DefaultInstructions = "After typing a few characters, suggestions of similar search terms may be available for selection. Use up and down arrow keys to select a suggestion then press enter."

// SuggestionsAvailable is announced whenever a non-empty list is built.
const SuggestionsAvailable = "Suggestions are available for this field. Use up and down arrows to select a suggestion and enter key to use it."

// NoSelection is the value of Selected when no suggestion is selected.
const NoSelection = -1

// Announcer receives announcement text as it changes. It is the outbound
// side of the live region.
type Announcer interface {
	Announce(text string)
}

// AnnouncerFunc adapts a function to the Announcer interface.
type AnnouncerFunc func(text string)

// Announce implements Announcer.
func (f AnnouncerFunc) Announce(text string) {
	f(text)
}

// Generation identifies one build of the suggestion list. Every rebuild and
// every clear produces a new generation.
type Generation uint64

// Options configures a Field. They are copied by New and never change afterwards.
type Options struct {
	// Instructions are announced when the field gains focus.
	Instructions string

	// MinLength is the minimum text length, in runes, before suggestions are computed.
	MinLength int

	// MaxResults caps the list. Up to MaxResults+1 entries are shown.
	MaxResults int

	// Source is the full candidate pool, in display order.
	Source []string

	// Announcer, if set, is notified of every non-empty announcement change.
	Announcer Announcer

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Handler is the set of events a host delivers to a suggest field.
type Handler interface {
	OnInput(text string)
	OnArrowDown()
	OnArrowUp()
	OnEnter() (value string, committed bool)
	OnEscape()
	OnTab()
	OnFocus()
	OnFocusLost() Generation
	OnSuggestionActivate(index int) (value string, committed bool)
}

var _ Handler = (*Field)(nil)

// Field holds the state of one suggest field.
type Field struct {
	instructions string
	minLength    int
	maxResults   int
	source       []string

	suggestions  []Suggestion
	selected     int
	announcement string
	generation   Generation

	announcer Announcer
	logger    *zap.Logger
}

// New creates a Field in its idle state.
func New(opts Options) *Field {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	instructions := opts.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}

	source := make([]string, len(opts.Source))
	copy(source, opts.Source)

	return &Field{
		instructions: instructions,
		minLength:    opts.MinLength,
		maxResults:   opts.MaxResults,
		source:       source,
		selected:     NoSelection,
		announcer:    opts.Announcer,
		logger:       logger,
	}
}

// OnInput rebuilds the suggestion list for the current field text.
// An empty result leaves the announcement untouched.
func (f *Field) OnInput(text string) {
	f.suggestions = matchWithLogger(f.source, text, f.minLength, f.maxResults, f.logger)
	f.selected = NoSelection
	f.generation++

	f.logger.Debug("suggestions rebuilt",
		zap.String("text", text),
		zap.Int("count", len(f.suggestions)),
		zap.Uint64("generation", uint64(f.generation)))

	if len(f.suggestions) > 0 {
		f.setAnnouncement(SuggestionsAvailable)
	}
}

// OnArrowDown selects the first suggestion when nothing is selected, and the
// next one otherwise. Moving past the last suggestion clears the selection.
func (f *Field) OnArrowDown() {
	if f.selected == NoSelection {
		f.selectIndex(0)
		return
	}
	f.selectIndex(f.selected + 1)
}

// OnArrowUp selects the previous suggestion. Moving before the first one
// clears the selection; with nothing selected it does nothing.
func (f *Field) OnArrowUp() {
	if f.selected == NoSelection {
		return
	}
	f.selectIndex(f.selected - 1)
}

// selectIndex moves the selection to i, or clears it when i is out of range.
// The announcement follows the selected text, which is empty when nothing
// ends up selected.
func (f *Field) selectIndex(i int) {
	if i < 0 || i >= len(f.suggestions) {
		f.selected = NoSelection
		f.setAnnouncement("")
		return
	}
	f.selected = i
	f.setAnnouncement(f.suggestions[i].Text)
}

// OnEnter commits the selected suggestion, if any. The list is always
// emptied and hidden.
func (f *Field) OnEnter() (string, bool) {
	value, ok := f.current()
	f.clear()
	if ok {
		f.logger.Debug("suggestion committed", zap.String("value", value), zap.String("via", "enter"))
	}
	return value, ok
}

// OnEscape empties and hides the list.
func (f *Field) OnEscape() {
	f.clear()
}

// OnTab empties and hides the list.
func (f *Field) OnTab() {
	f.clear()
}

// OnSuggestionActivate commits the suggestion at index, as a pointer click
// does. Out-of-range indices are ignored.
func (f *Field) OnSuggestionActivate(index int) (string, bool) {
	if index < 0 || index >= len(f.suggestions) {
		return "", false
	}
	value := f.suggestions[index].Text
	f.clear()
	f.logger.Debug("suggestion committed", zap.String("value", value), zap.String("via", "pointer"))
	return value, true
}

// OnFocus announces the field's instructions.
func (f *Field) OnFocus() {
	f.setAnnouncement(f.instructions)
}

// OnFocusLost clears the selection and returns the generation a delayed
// Dismiss should carry. The list stays visible so a pointer activation can
// still land during the grace period.
func (f *Field) OnFocusLost() Generation {
	f.selected = NoSelection
	return f.generation
}

// Dismiss empties and hides the list if no rebuild or clear has happened
// since gen was issued. It reports whether anything was dismissed.
func (f *Field) Dismiss(gen Generation) bool {
	if gen != f.generation {
		f.logger.Debug("stale dismissal ignored",
			zap.Uint64("pending", uint64(gen)),
			zap.Uint64("current", uint64(f.generation)))
		return false
	}
	f.clear()
	return true
}

// Suggestions returns the current list.
func (f *Field) Suggestions() []Suggestion {
	return f.suggestions
}

// Selected returns the selected index, or NoSelection.
func (f *Field) Selected() int {
	return f.selected
}

// Visible reports whether the dropdown should be shown.
func (f *Field) Visible() bool {
	return len(f.suggestions) > 0
}

// Announcement returns the text of the live region.
func (f *Field) Announcement() string {
	return f.announcement
}

// Generation returns the current list generation.
func (f *Field) Generation() Generation {
	return f.generation
}

// Instructions returns the instructions announced on focus.
func (f *Field) Instructions() string {
	return f.instructions
}

func (f *Field) current() (string, bool) {
	if f.selected < 0 || f.selected >= len(f.suggestions) {
		return "", false
	}
	return f.suggestions[f.selected].Text, true
}

func (f *Field) clear() {
	f.suggestions = nil
	f.selected = NoSelection
	f.generation++
}

func (f *Field) setAnnouncement(text string) {
	if text == f.announcement {
		return
	}
	f.announcement = text
	if text != "" && f.announcer != nil {
		f.announcer.Announce(text)
	}
}
