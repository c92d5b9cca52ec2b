package buffer

import "strings"

// ReplaceRange splices text into the document at the given position
// without removing any existing text. text may contain '\n'. It returns
// the position just past the inserted text; the cursor is not moved.
func (b *Buffer) ReplaceRange(text string, at Pos) Pos {
	at = b.clampPos(at)
	if text == "" {
		return at
	}

	line := b.lines[at.Line]
	prefix := append([]rune(nil), line[:at.Ch]...)
	suffix := append([]rune(nil), line[at.Ch:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]rune, 0, len(parts))
	var end Pos
	if len(parts) == 1 {
		ins := []rune(parts[0])
		merged := make([]rune, 0, len(prefix)+len(ins)+len(suffix))
		merged = append(merged, prefix...)
		merged = append(merged, ins...)
		merged = append(merged, suffix...)
		repl = append(repl, merged)
		end = Pos{Line: at.Line, Ch: len(prefix) + len(ins)}
	} else {
		first := append(prefix, []rune(parts[0])...)
		repl = append(repl, first)
		for i := 1; i < len(parts)-1; i++ {
			repl = append(repl, []rune(parts[i]))
		}
		lastPart := []rune(parts[len(parts)-1])
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)
		end = Pos{Line: at.Line + len(parts) - 1, Ch: len(lastPart)}
	}

	out := make([][]rune, 0, len(b.lines)+len(repl)-1)
	out = append(out, b.lines[:at.Line]...)
	out = append(out, repl...)
	out = append(out, b.lines[at.Line+1:]...)
	b.lines = out
	b.version++

	// Keep the cursor pointing at the same text it pointed at before.
	if b.cursor.Line > at.Line {
		b.cursor.Line += len(parts) - 1
	} else if b.cursor.Line == at.Line && b.cursor.Ch >= at.Ch {
		if len(parts) == 1 {
			b.cursor.Ch += len([]rune(parts[0]))
		} else {
			b.cursor = Pos{Line: end.Line, Ch: end.Ch + (b.cursor.Ch - at.Ch)}
		}
	}
	return end
}

// InsertAtCursor inserts text at the cursor and leaves the cursor just
// past the insertion.
func (b *Buffer) InsertAtCursor(text string) {
	if text == "" {
		return
	}
	end := b.ReplaceRange(text, b.cursor)
	b.cursor = end
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertAtCursor("\n")
}

// DeleteBackward applies backspace semantics at the cursor.
func (b *Buffer) DeleteBackward() {
	line, ch := b.cursor.Line, b.cursor.Ch
	if ch > 0 {
		cur := b.lines[line]
		b.lines[line] = append(cur[:ch-1], cur[ch:]...)
		b.cursor.Ch--
		b.version++
		return
	}
	if line == 0 {
		return
	}
	// Join with the previous line.
	prev := b.lines[line-1]
	b.cursor = Pos{Line: line - 1, Ch: len(prev)}
	b.lines[line-1] = append(prev, b.lines[line]...)
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.version++
}

// DeleteForward applies delete-key semantics at the cursor.
func (b *Buffer) DeleteForward() {
	line, ch := b.cursor.Line, b.cursor.Ch
	cur := b.lines[line]
	if ch < len(cur) {
		b.lines[line] = append(cur[:ch], cur[ch+1:]...)
		b.version++
		return
	}
	if line == len(b.lines)-1 {
		return
	}
	// Join with the next line.
	b.lines[line] = append(cur, b.lines[line+1]...)
	b.lines = append(b.lines[:line+1], b.lines[line+2:]...)
	b.version++
}
