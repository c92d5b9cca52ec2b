package buffer

import "testing"

func TestBuffer_NewAndText(t *testing.T) {
	b := New("ab\ncd")
	if got, want := b.Text(), "ab\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SetCursor_Clamps(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Line: 9, Ch: 9})
	if got, want := b.Cursor(), (Pos{Line: 1, Ch: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.SetCursor(Pos{Line: -1, Ch: -1})
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_ReplaceRange_SplicesWithoutDeleting(t *testing.T) {
	b := New("hello world")
	end := b.ReplaceRange("ɸ", Pos{Line: 0, Ch: 5})
	if got, want := b.Text(), "helloɸ world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := end, (Pos{Line: 0, Ch: 6}); got != want {
		t.Fatalf("end=%v, want %v", got, want)
	}
}

func TestBuffer_ReplaceRange_MultiLine(t *testing.T) {
	b := New("ab")
	end := b.ReplaceRange("X\nY", Pos{Line: 0, Ch: 1})
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := end, (Pos{Line: 1, Ch: 1}); got != want {
		t.Fatalf("end=%v, want %v", got, want)
	}
}

func TestBuffer_ReplaceRange_ShiftsCursorAfterInsertion(t *testing.T) {
	b := New("abcd")
	b.SetCursor(Pos{Line: 0, Ch: 3})
	b.ReplaceRange("ŋ", Pos{Line: 0, Ch: 1})
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	// Insertion after the cursor leaves it alone.
	b.SetCursor(Pos{Line: 0, Ch: 1})
	b.ReplaceRange("x", Pos{Line: 0, Ch: 4})
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_InsertAtCursor_AdvancesByRunes(t *testing.T) {
	b := New("")
	b.InsertAtCursor("ə")
	b.InsertAtCursor("ʊ")
	if got, want := b.Text(), "əʊ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_InsertAtCursor_CombiningMark(t *testing.T) {
	b := New("a")
	b.SetCursor(Pos{Line: 0, Ch: 1})
	b.InsertAtCursor("̃") // combining tilde: one rune, zero width
	if got, want := b.Text(), "ã"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_JoinsLines(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Line: 1, Ch: 0})
	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLines(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Line: 0, Ch: 2})
	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Line: 0, Ch: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_InsertNewline(t *testing.T) {
	b := New("ab")
	b.SetCursor(Pos{Line: 0, Ch: 1})
	b.InsertNewline()
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Line: 1, Ch: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_VersionBumpsOnMutation(t *testing.T) {
	b := New("ab")
	v := b.Version()
	b.InsertAtCursor("x")
	if got := b.Version(); got <= v {
		t.Fatalf("version=%d, want > %d", got, v)
	}
	v = b.Version()
	b.SetCursor(b.Cursor()) // no-op move
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}
