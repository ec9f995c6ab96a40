package field

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b.Text() != "" {
		t.Errorf("expected empty text, got %q", b.Text())
	}
	if b.Pos() != 0 {
		t.Errorf("expected pos 0, got %d", b.Pos())
	}
}

func TestNewBufferWithText(t *testing.T) {
	b := NewBufferWithText("héllo")
	if b.Text() != "héllo" {
		t.Errorf("expected text %q, got %q", "héllo", b.Text())
	}
	if b.Pos() != 5 || b.Len() != 5 {
		t.Errorf("expected pos and len 5, got %d and %d", b.Pos(), b.Len())
	}
}

func TestBufferSetPosClamps(t *testing.T) {
	b := NewBufferWithText("hello")

	b.SetPos(2)
	if b.Pos() != 2 {
		t.Errorf("expected pos 2, got %d", b.Pos())
	}
	b.SetPos(-5)
	if b.Pos() != 0 {
		t.Errorf("expected pos 0, got %d", b.Pos())
	}
	b.SetPos(100)
	if b.Pos() != 5 {
		t.Errorf("expected pos 5, got %d", b.Pos())
	}
}

func TestBufferInsertRunes(t *testing.T) {
	b := NewBufferWithText("hed")
	b.SetPos(2)
	b.InsertRunes([]rune("llo worl"))

	if b.Text() != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", b.Text())
	}
	if b.Pos() != 10 {
		t.Errorf("expected pos 10, got %d", b.Pos())
	}
}

func TestBufferDeleteChar(t *testing.T) {
	b := NewBufferWithText("abc")

	if !b.DeleteCharBackward() || b.Text() != "ab" {
		t.Errorf("backspace at end: got %q", b.Text())
	}
	if b.DeleteCharForward() {
		t.Error("delete at end should do nothing")
	}

	b.CursorStart()
	if b.DeleteCharBackward() {
		t.Error("backspace at start should do nothing")
	}
	if !b.DeleteCharForward() || b.Text() != "b" {
		t.Errorf("delete at start: got %q", b.Text())
	}
}

func TestBufferDeleteAroundCursor(t *testing.T) {
	b := NewBufferWithText("new york")
	b.SetPos(3)
	b.DeleteBeforeCursor()
	if b.Text() != " york" || b.Pos() != 0 {
		t.Errorf("expected %q at 0, got %q at %d", " york", b.Text(), b.Pos())
	}

	b = NewBufferWithText("new york")
	b.SetPos(3)
	b.DeleteAfterCursor()
	if b.Text() != "new" || b.Pos() != 3 {
		t.Errorf("expected %q at 3, got %q at %d", "new", b.Text(), b.Pos())
	}
}

func TestBufferWords(t *testing.T) {
	b := NewBufferWithText("united  states")

	b.WordBackward()
	if b.Pos() != 8 {
		t.Errorf("expected pos 8, got %d", b.Pos())
	}
	b.WordBackward()
	if b.Pos() != 0 {
		t.Errorf("expected pos 0, got %d", b.Pos())
	}
	b.WordForward()
	if b.Pos() != 6 {
		t.Errorf("expected pos 6, got %d", b.Pos())
	}

	b.CursorEnd()
	b.DeleteWordBackward()
	if b.Text() != "united  " {
		t.Errorf("expected %q, got %q", "united  ", b.Text())
	}

	b.CursorStart()
	b.DeleteWordForward()
	if b.Text() != "  " || b.Pos() != 0 {
		t.Errorf("expected %q at 0, got %q at %d", "  ", b.Text(), b.Pos())
	}
}
