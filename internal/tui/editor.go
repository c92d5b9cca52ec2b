package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ipapad/internal/buffer"
)

var (
	lineNumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			PaddingRight(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205"))
)

// EditorPane renders a buffer and receives symbol insertions. It is
// shared by pointer between the app model and the tracker so inserts
// land in the same document the user is typing in.
type EditorPane struct {
	buf      *buffer.Buffer
	viewport viewport.Model

	focused        bool
	focusRequested bool
	savedVersion   uint64
}

func NewEditorPane(text string) *EditorPane {
	e := &EditorPane{
		buf:      buffer.New(text),
		viewport: viewport.New(0, 0),
	}
	e.savedVersion = e.buf.Version()
	return e
}

// Cursor, ReplaceRange, SetCursor, and Focus satisfy the insertion
// target contract.

func (e *EditorPane) Cursor() buffer.Pos { return e.buf.Cursor() }

func (e *EditorPane) ReplaceRange(text string, at buffer.Pos) buffer.Pos {
	return e.buf.ReplaceRange(text, at)
}

func (e *EditorPane) SetCursor(p buffer.Pos) { e.buf.SetCursor(p) }

// Focus requests keyboard focus back. The app model polls the request
// after each palette action so focus returns to the document and the
// user can keep typing.
func (e *EditorPane) Focus() { e.focusRequested = true }

func (e *EditorPane) TakeFocusRequest() bool {
	req := e.focusRequested
	e.focusRequested = false
	return req
}

func (e *EditorPane) Text() string { return e.buf.Text() }

func (e *EditorPane) Dirty() bool { return e.buf.Version() != e.savedVersion }

func (e *EditorPane) MarkSaved() { e.savedVersion = e.buf.Version() }

func (e *EditorPane) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.viewport.Width = width
	e.viewport.Height = height
}

// HandleKey applies typing, movement, and deletion keys.
func (e *EditorPane) HandleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			e.buf.InsertAtCursor(" ")
			return
		}
		e.buf.InsertAtCursor(string(msg.Runes))
	case tea.KeyEnter:
		e.buf.InsertNewline()
	case tea.KeyBackspace:
		e.buf.DeleteBackward()
	case tea.KeyDelete:
		e.buf.DeleteForward()
	case tea.KeyLeft:
		cur := e.buf.Cursor()
		if cur.Ch > 0 {
			e.buf.SetCursor(buffer.Pos{Line: cur.Line, Ch: cur.Ch - 1})
		} else if cur.Line > 0 {
			e.buf.SetCursor(buffer.Pos{Line: cur.Line - 1, Ch: len([]rune(e.buf.Line(cur.Line - 1)))})
		}
	case tea.KeyRight:
		cur := e.buf.Cursor()
		if cur.Ch < len([]rune(e.buf.Line(cur.Line))) {
			e.buf.SetCursor(buffer.Pos{Line: cur.Line, Ch: cur.Ch + 1})
		} else if cur.Line < e.buf.LineCount()-1 {
			e.buf.SetCursor(buffer.Pos{Line: cur.Line + 1, Ch: 0})
		}
	case tea.KeyUp:
		cur := e.buf.Cursor()
		e.buf.SetCursor(buffer.Pos{Line: cur.Line - 1, Ch: cur.Ch})
	case tea.KeyDown:
		cur := e.buf.Cursor()
		e.buf.SetCursor(buffer.Pos{Line: cur.Line + 1, Ch: cur.Ch})
	case tea.KeyHome:
		cur := e.buf.Cursor()
		e.buf.SetCursor(buffer.Pos{Line: cur.Line, Ch: 0})
	case tea.KeyEnd:
		cur := e.buf.Cursor()
		e.buf.SetCursor(buffer.Pos{Line: cur.Line, Ch: len([]rune(e.buf.Line(cur.Line)))})
	}
}

// View renders the buffer with line numbers and a cursor cell.
func (e *EditorPane) View() string {
	e.syncViewport()
	return e.viewport.View()
}

func (e *EditorPane) syncViewport() {
	e.viewport.SetContent(e.renderContent())
	e.followCursor()
}

func (e *EditorPane) renderContent() string {
	var sb strings.Builder
	cur := e.buf.Cursor()
	gutterWidth := len(fmt.Sprintf("%d", e.buf.LineCount()))

	for i := 0; i < e.buf.LineCount(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(lineNumStyle.Render(fmt.Sprintf("%*d", gutterWidth, i+1)))

		line := e.buf.Line(i)
		if e.focused && i == cur.Line {
			before, at, after := buffer.ClusterAt(line, cur.Ch)
			if at == "" {
				at = " " // cursor past end of line
			}
			sb.WriteString(before)
			sb.WriteString(cursorStyle.Render(at))
			sb.WriteString(after)
		} else {
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func (e *EditorPane) followCursor() {
	cur := e.buf.Cursor()
	h := e.viewport.Height
	if h <= 0 {
		return
	}
	y := e.viewport.YOffset
	if cur.Line < y {
		e.viewport.SetYOffset(cur.Line)
	} else if cur.Line >= y+h {
		e.viewport.SetYOffset(cur.Line - h + 1)
	}
}
