// Package tracker decouples "where the palette was clicked" from
// "where the symbol should land". The palette panel can take focus
// without being an editor, so inserts always target the last surface
// that actually was one.
package tracker

import (
	"unicode/utf8"

	"ipapad/internal/buffer"
)

// Editor is the contract an editing surface must satisfy to receive
// symbol insertions.
type Editor interface {
	Cursor() buffer.Pos
	ReplaceRange(text string, at buffer.Pos) buffer.Pos
	SetCursor(p buffer.Pos)
	Focus()
}

// ViewID identifies the view that owns an editor.
type ViewID string

// Host answers "what is focused right now". ActiveEditor reports
// ok=false when the focused surface is not a document editor (the
// palette panel, a settings overlay).
type Host interface {
	ActiveEditor() (Editor, ViewID, bool)
}

// Notifier is the fire-and-forget toast channel.
type Notifier func(msg string)

// Tracker remembers the last genuine editor reported by the host and
// inserts symbols into it.
type Tracker struct {
	host   Host
	notify Notifier

	target     Editor
	targetView ViewID
}

func New(host Host, notify Notifier) *Tracker {
	return &Tracker{host: host, notify: notify}
}

// OnFocusChanged records the currently focused editor, if any. A focus
// change to a non-editor surface leaves the previous target in place
// (sticky last-good); an unresolvable query is a no-op. The target is
// never cleared.
func (t *Tracker) OnFocusChanged() {
	if t.host == nil {
		return
	}
	ed, view, ok := t.host.ActiveEditor()
	if !ok || ed == nil {
		return
	}
	t.target = ed
	t.targetView = view
}

// Insert splices symbol into the remembered editor at its current
// cursor, advances the cursor by the symbol's character length, and
// returns focus to the editor. With no target it posts a single
// notification and mutates nothing. Insert never fails to the caller.
func (t *Tracker) Insert(symbol string) {
	if t.target == nil {
		if t.notify != nil {
			t.notify("No active editor")
		}
		return
	}
	if symbol == "" {
		t.target.Focus()
		return
	}

	pos := t.target.Cursor()
	t.target.ReplaceRange(symbol, pos)
	// Advance by rune count, not display width: a combining diacritic
	// is zero cells wide but still one character in the buffer.
	t.target.SetCursor(buffer.Pos{
		Line: pos.Line,
		Ch:   pos.Ch + utf8.RuneCountInString(symbol),
	})
	t.target.Focus()
}

// Target returns the current target's owning view, and whether any
// editor has been remembered yet.
func (t *Tracker) Target() (ViewID, bool) {
	return t.targetView, t.target != nil
}
