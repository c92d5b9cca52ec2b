package buffer

import "strings"

// Pos points into the document by (line, character offset).
// Ch is 0-based and counts runes, not bytes and not display cells: a
// combining diacritic occupies one position even though it renders
// with zero width.
type Pos struct {
	Line int
	Ch   int
}

// Buffer is the document state: text and cursor.
type Buffer struct {
	lines   [][]rune
	cursor  Pos
	version uint64
}

func New(text string) *Buffer {
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Line: 0, Ch: 0},
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// Version increments on every mutation; render caches key off it.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor, clamping to the document bounds.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) lineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

func (b *Buffer) clampPos(p Pos) Pos {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	if n := b.lineLen(p.Line); p.Ch > n {
		p.Ch = n
	}
	return p
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
