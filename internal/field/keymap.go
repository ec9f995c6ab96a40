package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the field to do.
type Action int

const (
	// ActionNone means the key has no binding; printable keys are inserted.
	ActionNone Action = iota

	// Cursor movement
	ActionCharacterForward
	ActionCharacterBackward
	ActionWordForward
	ActionWordBackward
	ActionLineStart
	ActionLineEnd

	// Editing
	ActionDeleteCharacterBackward
	ActionDeleteCharacterForward
	ActionDeleteWordBackward
	ActionDeleteWordForward
	ActionDeleteBeforeCursor
	ActionDeleteAfterCursor
	ActionPaste

	// Suggestion list
	ActionSelectPrevious // Up
	ActionSelectNext     // Down
	ActionSubmit         // Enter: commit the selection, or submit the field when no list is open
	ActionDismiss        // Escape
	ActionTab            // Tab: dismiss, as leaving the field would

	// Program
	ActionInterrupt
	ActionClearScreen
)

var actionNames = map[Action]string{
	ActionNone:                    "None",
	ActionCharacterForward:        "CharacterForward",
	ActionCharacterBackward:       "CharacterBackward",
	ActionWordForward:             "WordForward",
	ActionWordBackward:            "WordBackward",
	ActionLineStart:               "LineStart",
	ActionLineEnd:                 "LineEnd",
	ActionDeleteCharacterBackward: "DeleteCharacterBackward",
	ActionDeleteCharacterForward:  "DeleteCharacterForward",
	ActionDeleteWordBackward:      "DeleteWordBackward",
	ActionDeleteWordForward:       "DeleteWordForward",
	ActionDeleteBeforeCursor:      "DeleteBeforeCursor",
	ActionDeleteAfterCursor:       "DeleteAfterCursor",
	ActionPaste:                   "Paste",
	ActionSelectPrevious:          "SelectPrevious",
	ActionSelectNext:              "SelectNext",
	ActionSubmit:                  "Submit",
	ActionDismiss:                 "Dismiss",
	ActionTab:                     "Tab",
	ActionInterrupt:               "Interrupt",
	ActionClearScreen:             "ClearScreen",
}

// String returns the name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// helpDescriptions lists the actions shown in the help footer, in order.
var helpDescriptions = []struct {
	action Action
	desc   string
}{
	{ActionSelectNext, "next"},
	{ActionSelectPrevious, "previous"},
	{ActionSubmit, "use"},
	{ActionDismiss, "dismiss"},
	{ActionInterrupt, "quit"},
}

// KeyBinding maps key strings (as produced by tea.KeyMsg.String) to an action.
type KeyBinding struct {
	Keys   []string
	Action Action
}

// KeyMap resolves key presses to actions.
type KeyMap struct {
	bindings []KeyBinding
	lookup   map[string]Action
}

// NewKeyMap creates a KeyMap from bindings. A key bound twice resolves to
// the later binding.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	km := &KeyMap{bindings: bindings}
	km.rebuildLookup()
	return km
}

func (km *KeyMap) rebuildLookup() {
	km.lookup = make(map[string]Action)
	for _, b := range km.bindings {
		for _, k := range b.Keys {
			km.lookup[k] = b.Action
		}
	}
}

// DefaultKeyMap returns the standard bindings: arrows drive the list,
// Emacs-style chords edit the text.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Keys: []string{"right", "ctrl+f"}, Action: ActionCharacterForward},
		{Keys: []string{"left", "ctrl+b"}, Action: ActionCharacterBackward},
		{Keys: []string{"alt+right", "ctrl+right", "alt+f"}, Action: ActionWordForward},
		{Keys: []string{"alt+left", "ctrl+left", "alt+b"}, Action: ActionWordBackward},
		{Keys: []string{"home", "ctrl+a"}, Action: ActionLineStart},
		{Keys: []string{"end", "ctrl+e"}, Action: ActionLineEnd},

		{Keys: []string{"backspace", "ctrl+h"}, Action: ActionDeleteCharacterBackward},
		{Keys: []string{"delete", "ctrl+d"}, Action: ActionDeleteCharacterForward},
		{Keys: []string{"ctrl+w", "alt+backspace"}, Action: ActionDeleteWordBackward},
		{Keys: []string{"alt+d", "alt+delete"}, Action: ActionDeleteWordForward},
		{Keys: []string{"ctrl+u"}, Action: ActionDeleteBeforeCursor},
		{Keys: []string{"ctrl+k"}, Action: ActionDeleteAfterCursor},
		{Keys: []string{"ctrl+v"}, Action: ActionPaste},

		{Keys: []string{"up", "ctrl+p"}, Action: ActionSelectPrevious},
		{Keys: []string{"down", "ctrl+n"}, Action: ActionSelectNext},
		{Keys: []string{"enter"}, Action: ActionSubmit},
		{Keys: []string{"esc"}, Action: ActionDismiss},
		{Keys: []string{"tab", "shift+tab"}, Action: ActionTab},

		{Keys: []string{"ctrl+c"}, Action: ActionInterrupt},
		{Keys: []string{"ctrl+l"}, Action: ActionClearScreen},
	})
}

// Lookup returns the action bound to msg, or ActionNone.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	if action, ok := km.lookup[msg.String()]; ok {
		return action
	}
	return ActionNone
}

// SetBinding replaces the binding for binding.Action, or adds it.
func (km *KeyMap) SetBinding(binding KeyBinding) {
	for i, b := range km.bindings {
		if b.Action == binding.Action {
			km.bindings[i] = binding
			km.rebuildLookup()
			return
		}
	}
	km.bindings = append(km.bindings, binding)
	km.rebuildLookup()
}

// AddKeys binds more keys to action.
func (km *KeyMap) AddKeys(action Action, keys ...string) {
	for i := range km.bindings {
		if km.bindings[i].Action == action {
			km.bindings[i].Keys = append(km.bindings[i].Keys, keys...)
			km.rebuildLookup()
			return
		}
	}
	km.SetBinding(KeyBinding{Keys: keys, Action: action})
}

// RemoveBinding unbinds every key of action.
func (km *KeyMap) RemoveBinding(action Action) {
	kept := km.bindings[:0:0]
	for _, b := range km.bindings {
		if b.Action != action {
			kept = append(kept, b)
		}
	}
	km.bindings = kept
	km.rebuildLookup()
}

// Keys returns the keys bound to action.
func (km *KeyMap) Keys(action Action) []string {
	for _, b := range km.bindings {
		if b.Action == action {
			return append([]string(nil), b.Keys...)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (km *KeyMap) Clone() *KeyMap {
	bindings := make([]KeyBinding, len(km.bindings))
	for i, b := range km.bindings {
		bindings[i] = KeyBinding{Keys: append([]string(nil), b.Keys...), Action: b.Action}
	}
	return NewKeyMap(bindings)
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	var result []key.Binding
	for _, h := range helpDescriptions {
		keys := km.Keys(h.action)
		if len(keys) == 0 {
			continue
		}
		result = append(result, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpLabel(keys[0]), h.desc),
		))
	}
	return result
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

func helpLabel(k string) string {
	switch k {
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return strings.ReplaceAll(k, "ctrl+", "^")
}
