package field

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleKeyMsg resolves a key press to an action and applies it.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Lookup(msg) {
	case ActionSelectNext:
		m.suggest.OnArrowDown()
		return m, nil

	case ActionSelectPrevious:
		m.suggest.OnArrowUp()
		return m, nil

	case ActionSubmit:
		return m.handleSubmit()

	case ActionDismiss:
		m.suggest.OnEscape()
		return m, nil

	case ActionTab:
		m.suggest.OnTab()
		return m, nil

	case ActionInterrupt:
		m.result = Result{Type: ResultInterrupt}
		return m, tea.Quit

	case ActionClearScreen:
		return m, tea.ClearScreen

	case ActionPaste:
		return m, Paste

	case ActionCharacterForward:
		m.buffer.SetPos(m.buffer.Pos() + 1)
		return m, nil

	case ActionCharacterBackward:
		m.buffer.SetPos(m.buffer.Pos() - 1)
		return m, nil

	case ActionWordForward:
		m.buffer.WordForward()
		return m, nil

	case ActionWordBackward:
		m.buffer.WordBackward()
		return m, nil

	case ActionLineStart:
		m.buffer.CursorStart()
		return m, nil

	case ActionLineEnd:
		m.buffer.CursorEnd()
		return m, nil

	case ActionDeleteCharacterBackward:
		return m.edit(func(b *Buffer) { b.DeleteCharBackward() })

	case ActionDeleteCharacterForward:
		return m.edit(func(b *Buffer) { b.DeleteCharForward() })

	case ActionDeleteWordBackward:
		return m.edit((*Buffer).DeleteWordBackward)

	case ActionDeleteWordForward:
		return m.edit((*Buffer).DeleteWordForward)

	case ActionDeleteBeforeCursor:
		return m.edit((*Buffer).DeleteBeforeCursor)

	case ActionDeleteAfterCursor:
		return m.edit((*Buffer).DeleteAfterCursor)

	default:
		if len(msg.Runes) > 0 {
			return m.handleInsertRunes(msg.Runes)
		}
	}

	return m, nil
}

// handleSubmit commits the selected suggestion when the list is open and
// submits the field otherwise. An open list is always closed.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if !m.suggest.Visible() {
		m.result = Result{Type: ResultSubmit, Value: m.buffer.Text()}
		return m, tea.Quit
	}

	if value, ok := m.suggest.OnEnter(); ok {
		m.buffer.SetText(value)
		m.committed = value
	}
	return m, nil
}

// handleBlur clears the selection now and schedules the list to be
// dismissed after the grace delay.
func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	m.focused = false
	gen := m.suggest.OnFocusLost()

	return m, tea.Tick(m.dismissDelay, func(time.Time) tea.Msg {
		return dismissMsg{generation: gen}
	})
}

// handleMouse commits the suggestion under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.suggest.Visible() {
		return m, nil
	}

	row := m.renderer.SuggestionRowAt(msg.Y, len(m.suggest.Suggestions()))
	if row < 0 {
		return m, nil
	}

	if value, ok := m.suggest.OnSuggestionActivate(row); ok {
		m.buffer.SetText(value)
		m.committed = value
		m.logger.Debug("suggestion clicked", zap.Int("row", row), zap.String("value", value))
	}
	return m, nil
}

// handleInsertRunes inserts typed or pasted text.
func (m Model) handleInsertRunes(runes []rune) (tea.Model, tea.Cmd) {
	return m.edit(func(b *Buffer) { b.InsertRunes(sanitizeRunes(runes)) })
}

// edit applies fn to the buffer and rebuilds suggestions if the text changed.
func (m Model) edit(fn func(*Buffer)) (tea.Model, tea.Cmd) {
	before := m.buffer.Text()
	fn(m.buffer)

	if text := m.buffer.Text(); text != before {
		m.committed = ""
		m.suggest.OnInput(text)
	}
	return m, nil
}
