package tracker

import (
	"testing"

	"ipapad/internal/buffer"
)

// fakeEditor implements Editor over a real buffer and records focus
// calls.
type fakeEditor struct {
	buf     *buffer.Buffer
	focused int
}

func newFakeEditor(text string) *fakeEditor {
	return &fakeEditor{buf: buffer.New(text)}
}

func (e *fakeEditor) Cursor() buffer.Pos { return e.buf.Cursor() }

func (e *fakeEditor) ReplaceRange(text string, at buffer.Pos) buffer.Pos {
	return e.buf.ReplaceRange(text, at)
}

func (e *fakeEditor) SetCursor(p buffer.Pos) { e.buf.SetCursor(p) }

func (e *fakeEditor) Focus() { e.focused++ }

// fakeHost scripts what ActiveEditor reports.
type fakeHost struct {
	ed   Editor
	view ViewID
	ok   bool
}

func (h *fakeHost) ActiveEditor() (Editor, ViewID, bool) { return h.ed, h.view, h.ok }

func (h *fakeHost) focus(ed Editor, view ViewID) {
	h.ed, h.view, h.ok = ed, view, true
}

func (h *fakeHost) focusNonEditor() {
	h.ed, h.view, h.ok = nil, "", false
}

func TestTracker_InsertWithNoTargetNotifiesOnce(t *testing.T) {
	var notices []string
	tr := New(&fakeHost{}, func(msg string) { notices = append(notices, msg) })

	tr.Insert("ə")
	if len(notices) != 1 {
		t.Fatalf("notices=%v, want exactly one", notices)
	}
	if notices[0] != "No active editor" {
		t.Fatalf("notice=%q", notices[0])
	}
}

func TestTracker_InsertAtCursorAdvancesAndRefocuses(t *testing.T) {
	ed := newFakeEditor("hello world")
	ed.buf.SetCursor(buffer.Pos{Line: 0, Ch: 5})
	host := &fakeHost{}
	host.focus(ed, "doc-1")

	tr := New(host, nil)
	tr.OnFocusChanged()
	tr.Insert("ʃ")

	if got, want := ed.buf.Text(), "helloʃ world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := ed.buf.Cursor(), (buffer.Pos{Line: 0, Ch: 6}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if ed.focused != 1 {
		t.Fatalf("focus calls=%d, want 1", ed.focused)
	}
}

func TestTracker_CombiningMarkAdvancesByCharLength(t *testing.T) {
	ed := newFakeEditor("a")
	ed.buf.SetCursor(buffer.Pos{Line: 0, Ch: 1})
	host := &fakeHost{}
	host.focus(ed, "doc-1")

	tr := New(host, nil)
	tr.OnFocusChanged()
	tr.Insert("̃") // combining tilde

	if got, want := ed.buf.Text(), "ã"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	// One rune inserted, so the offset advances by one even though the
	// mark renders at zero width.
	if got, want := ed.buf.Cursor(), (buffer.Pos{Line: 0, Ch: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestTracker_StickyLastGoodTarget(t *testing.T) {
	first := newFakeEditor("first")
	second := newFakeEditor("second")
	host := &fakeHost{}
	tr := New(host, nil)

	host.focus(first, "doc-1")
	tr.OnFocusChanged()

	host.focus(second, "doc-2")
	tr.OnFocusChanged()

	// Palette, settings, whatever: not editors.
	host.focusNonEditor()
	tr.OnFocusChanged()
	tr.OnFocusChanged()

	tr.Insert("ŋ")
	if got, want := second.buf.Text(), "ŋsecond"; got != want {
		t.Fatalf("text=%q, want %q (insert should hit the most recent editor)", got, want)
	}
	if first.buf.Text() != "first" {
		t.Fatalf("first editor mutated: %q", first.buf.Text())
	}
	if view, ok := tr.Target(); !ok || view != "doc-2" {
		t.Fatalf("target=(%q,%v), want (doc-2,true)", view, ok)
	}
}

func TestTracker_RepeatedInsertsEachAdvance(t *testing.T) {
	ed := newFakeEditor("")
	host := &fakeHost{}
	host.focus(ed, "doc-1")
	tr := New(host, nil)
	tr.OnFocusChanged()

	tr.Insert("ɛ")
	tr.Insert("ː")
	tr.Insert("ˈ")

	if got, want := ed.buf.Text(), "ɛːˈ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := ed.buf.Cursor(), (buffer.Pos{Line: 0, Ch: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if ed.focused != 3 {
		t.Fatalf("focus calls=%d, want 3", ed.focused)
	}
}

func TestTracker_NoTargetInsertMutatesNothing(t *testing.T) {
	ed := newFakeEditor("untouched")
	host := &fakeHost{} // never reports an editor
	var notices int
	tr := New(host, func(string) { notices++ })

	tr.OnFocusChanged()
	tr.Insert("ɸ")

	if ed.buf.Text() != "untouched" {
		t.Fatalf("text=%q, want untouched", ed.buf.Text())
	}
	if notices != 1 {
		t.Fatalf("notices=%d, want 1", notices)
	}
	if _, ok := tr.Target(); ok {
		t.Fatal("tracker should have no target")
	}
}

func TestTracker_TextAroundInsertionUnchanged(t *testing.T) {
	ed := newFakeEditor("preˈpost")
	ed.buf.SetCursor(buffer.Pos{Line: 0, Ch: 4})
	host := &fakeHost{}
	host.focus(ed, "doc-1")
	tr := New(host, nil)
	tr.OnFocusChanged()

	tr.Insert("ʊ")
	if got, want := ed.buf.Text(), "preˈʊpost"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
