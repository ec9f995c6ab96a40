package field

import (
	"slices"
	"unicode"
)

// Buffer is the editable text of the field: a rune slice and a cursor.
type Buffer struct {
	runes []rune
	pos   int
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferWithText creates a buffer holding text with the cursor at the end.
func NewBufferWithText(text string) *Buffer {
	b := NewBuffer()
	b.SetText(text)
	return b
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the length of the content in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Pos returns the cursor position in runes.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetText replaces the content and moves the cursor to the end.
func (b *Buffer) SetText(text string) {
	b.runes = []rune(text)
	b.pos = len(b.runes)
}

// SetPos moves the cursor, clamped to [0, Len()].
func (b *Buffer) SetPos(pos int) {
	b.pos = max(0, min(pos, len(b.runes)))
}

// CursorStart moves the cursor to the start.
func (b *Buffer) CursorStart() {
	b.pos = 0
}

// CursorEnd moves the cursor to the end.
func (b *Buffer) CursorEnd() {
	b.pos = len(b.runes)
}

// InsertRunes inserts runes at the cursor and moves the cursor past them.
func (b *Buffer) InsertRunes(runes []rune) {
	if len(runes) == 0 {
		return
	}
	b.runes = slices.Insert(b.runes, b.pos, runes...)
	b.pos += len(runes)
}

// DeleteCharBackward deletes the rune before the cursor.
func (b *Buffer) DeleteCharBackward() bool {
	if b.pos == 0 {
		return false
	}
	b.runes = slices.Delete(b.runes, b.pos-1, b.pos)
	b.pos--
	return true
}

// DeleteCharForward deletes the rune under the cursor.
func (b *Buffer) DeleteCharForward() bool {
	if b.pos >= len(b.runes) {
		return false
	}
	b.runes = slices.Delete(b.runes, b.pos, b.pos+1)
	return true
}

// DeleteBeforeCursor deletes everything left of the cursor.
func (b *Buffer) DeleteBeforeCursor() {
	b.runes = slices.Delete(b.runes, 0, b.pos)
	b.pos = 0
}

// DeleteAfterCursor deletes everything from the cursor to the end.
func (b *Buffer) DeleteAfterCursor() {
	b.runes = b.runes[:b.pos]
}

// DeleteWordBackward deletes the word left of the cursor.
func (b *Buffer) DeleteWordBackward() {
	end := b.pos
	b.WordBackward()
	b.runes = slices.Delete(b.runes, b.pos, end)
}

// DeleteWordForward deletes the word right of the cursor.
func (b *Buffer) DeleteWordForward() {
	start := b.pos
	b.WordForward()
	b.runes = slices.Delete(b.runes, start, b.pos)
	b.pos = start
}

// WordBackward moves the cursor to the start of the previous word.
// Words are runs of non-space runes.
func (b *Buffer) WordBackward() {
	i := b.pos
	for i > 0 && unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	b.pos = i
}

// WordForward moves the cursor past the end of the next word.
func (b *Buffer) WordForward() {
	i := b.pos
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.pos = i
}
