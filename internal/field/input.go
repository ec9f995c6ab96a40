// Package field hosts a suggest.Field inside a Bubble Tea program. It owns
// the editable line, translates key, mouse and focus messages into suggest
// events, and renders the list, the announcement line and key help.
package field

import (
	"time"

	"github.com/atinylittleshell/suggestfield/internal/suggest"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// DefaultDismissDelay is how long the list survives focus loss, so that a
// click on a suggestion still lands.
const DefaultDismissDelay = 200 * time.Millisecond

// ResultType tells how an input session ended.
type ResultType int

const (
	// ResultNone means the session is still running.
	ResultNone ResultType = iota
	// ResultSubmit means Enter was pressed with no list open.
	ResultSubmit
	// ResultInterrupt means Ctrl+C was pressed.
	ResultInterrupt
)

// Result is the outcome of an input session.
type Result struct {
	Type  ResultType
	Value string
}

// Config configures a Model.
type Config struct {
	// Prompt is drawn before the text.
	Prompt string

	// Value is the initial text.
	Value string

	// Suggest configures the suggestion behaviour. If Suggest.Logger is nil,
	// Logger is used.
	Suggest suggest.Options

	// KeyMap provides key bindings. If nil, DefaultKeyMap is used.
	KeyMap *KeyMap

	// RenderConfig provides styling. If nil, DefaultRenderConfig is used.
	RenderConfig *RenderConfig

	// Width is the initial terminal width.
	Width int

	// DismissDelay is the grace period between focus loss and the list
	// being cleared. Zero means DefaultDismissDelay.
	DismissDelay time.Duration

	// HideHelp turns off the key help footer.
	HideHelp bool

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Model is the Bubble Tea model of a suggest field.
type Model struct {
	buffer  *Buffer
	suggest *suggest.Field
	keymap  *KeyMap
	focused bool
	prompt  string

	renderer     *Renderer
	dismissDelay time.Duration
	showHelp     bool

	// committed is the last suggestion used, until the text is edited.
	committed string

	result Result
	logger *zap.Logger
}

// New creates a focused Model. The field's instructions are announced
// straight away, as if focus had just arrived.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := cfg.Suggest
	if opts.Logger == nil {
		opts.Logger = logger
	}

	keymap := cfg.KeyMap
	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	renderConfig := cfg.RenderConfig
	if renderConfig == nil {
		defaultConfig := DefaultRenderConfig()
		renderConfig = &defaultConfig
	}

	renderer := NewRenderer(*renderConfig)
	renderer.SetWidth(cfg.Width)

	dismissDelay := cfg.DismissDelay
	if dismissDelay <= 0 {
		dismissDelay = DefaultDismissDelay
	}

	m := Model{
		buffer:       NewBufferWithText(cfg.Value),
		suggest:      suggest.New(opts),
		keymap:       keymap,
		focused:      true,
		prompt:       cfg.Prompt,
		renderer:     renderer,
		dismissDelay: dismissDelay,
		showHelp:     !cfg.HideHelp,
		result:       Result{Type: ResultNone},
		logger:       logger,
	}
	m.suggest.OnFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetWidth(msg.Width)
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		m.suggest.OnFocus()
		return m, nil

	case tea.BlurMsg:
		return m.handleBlur()

	case dismissMsg:
		if m.suggest.Dismiss(msg.generation) {
			m.logger.Debug("suggestions dismissed after focus loss")
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKeyMsg(msg)

	case pasteMsg:
		return m.handleInsertRunes([]rune(string(msg)))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.result.Type != ResultNone {
		return m.renderer.RenderInputLine(m.prompt, m.buffer, false)
	}

	var km *KeyMap
	if m.showHelp {
		km = m.keymap
	}
	return m.renderer.RenderFullView(m.prompt, m.buffer, m.focused, m.suggest, m.committed, km)
}

// Result returns how the session ended; Type is ResultNone while it runs.
func (m Model) Result() Result {
	return m.result
}

// Value returns the current text.
func (m Model) Value() string {
	return m.buffer.Text()
}

// SetValue replaces the text without rebuilding suggestions, as a
// programmatic value change would.
func (m *Model) SetValue(text string) {
	m.buffer.SetText(text)
}

// Committed returns the last suggestion used, or "" once the text has been
// edited since.
func (m Model) Committed() string {
	return m.committed
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.focused
}

// Suggest returns the underlying suggestion state.
func (m Model) Suggest() *suggest.Field {
	return m.suggest
}

// Buffer returns the underlying buffer.
func (m Model) Buffer() *Buffer {
	return m.buffer
}

// dismissMsg is the delayed half of focus loss.
type dismissMsg struct {
	generation suggest.Generation
}

// pasteMsg carries clipboard content.
type pasteMsg string

// Paste reads the clipboard.
func Paste() tea.Msg {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return pasteMsg(text)
}

// sanitizeRunes replaces tabs and line breaks with spaces.
func sanitizeRunes(runes []rune) []rune {
	result := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '\t', '\n', '\r':
			result[i] = ' '
		default:
			result[i] = r
		}
	}
	return result
}
