package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ipapad/internal/tracker"
)

// statusClearMsg expires a status-bar toast. Seq guards against an old
// timer clearing a newer message.
type statusClearMsg struct {
	Seq int
}

const statusTimeout = 3 * time.Second

func (m *AppModel) setStatus(msg string) tea.Cmd {
	m.Status = msg
	m.StatusSeq++
	seq := m.StatusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{Seq: seq}
	})
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.resizeEditor()
		return m, nil

	case statusClearMsg:
		if msg.Seq == m.StatusSeq {
			m.Status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m AppModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SavePrompt {
		return m.updateSavePrompt(msg)
	}

	// Global bindings first.
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Palette):
		// The one host command: open (or reveal) the palette. A second
		// press while it has focus closes it.
		if !m.ShowPalette {
			m.ShowPalette = true
			m.setFocus(focusPalette)
		} else if m.Focus == focusPalette {
			m.ShowPalette = false
			m.setFocus(focusEditor)
		} else {
			m.setFocus(focusPalette) // reveal: focus the existing panel
		}
		m.resizeEditor()
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		if m.Focus == focusSettings {
			m.closeSettings()
		} else {
			m.setFocus(focusSettings)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.saveBuffer()
	}

	switch m.Focus {
	case focusSettings:
		return m.updateSettingsKey(msg)
	case focusPalette:
		return m.updatePaletteKey(msg)
	default:
		return m.updateEditorKey(msg)
	}
}

func (m AppModel) updateEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.CycleFoc) && m.ShowPalette {
		m.setFocus(focusPalette)
		return m, nil
	}
	m.Editor.HandleKey(msg)
	return m, nil
}

func (m AppModel) updatePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plan := m.Store.RenderPlan()

	switch {
	case key.Matches(msg, m.keys.Close):
		m.ShowPalette = false
		m.setFocus(focusEditor)
		m.resizeEditor()
		return m, nil

	case key.Matches(msg, m.keys.CycleFoc):
		m.setFocus(focusEditor)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.Palette = m.Palette.moveUp(plan)
	case key.Matches(msg, m.keys.Down):
		m.Palette = m.Palette.moveDown(plan)
	case key.Matches(msg, m.keys.Left):
		m.Palette = m.Palette.moveLeft(plan)
	case key.Matches(msg, m.keys.Right):
		m.Palette = m.Palette.moveRight(plan)

	case key.Matches(msg, m.keys.Select):
		sym, ok := m.Palette.Selected(plan)
		if !ok {
			return m, nil
		}
		m.Tracker.Insert(sym)
		var cmd tea.Cmd
		if notice, ok := m.host.takeNotice(); ok {
			cmd = m.setStatus(notice)
		}
		// The insert refocuses its editor; honor that in the UI.
		if m.Editor.TakeFocusRequest() {
			m.setFocus(focusEditor)
		}
		return m, cmd
	}
	return m, nil
}

func (m AppModel) updateSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.Store.Order())

	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeSettings()

	case key.Matches(msg, m.keys.Up):
		m.Settings = SettingsState{Cursor: m.Settings.Cursor - 1}.clampTo(n)
	case key.Matches(msg, m.keys.Down):
		m.Settings = SettingsState{Cursor: m.Settings.Cursor + 1}.clampTo(n)

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelected(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelected(+1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	}
	return m, nil
}

// closeSettings returns focus to the palette when it is open, else the
// editor.
func (m *AppModel) closeSettings() {
	if m.ShowPalette {
		m.setFocus(focusPalette)
	} else {
		m.setFocus(focusEditor)
	}
}

func (m AppModel) saveBuffer() (tea.Model, tea.Cmd) {
	if m.FileName == "" {
		m.SavePrompt = true
		m.SaveInput.SetValue("")
		m.SaveInput.Focus()
		return m, textinput.Blink
	}
	return m.writeFile(m.FileName)
}

func (m AppModel) writeFile(name string) (tea.Model, tea.Cmd) {
	if err := os.WriteFile(name, []byte(m.Editor.Text()), 0644); err != nil {
		return m, m.setStatus(fmt.Sprintf("Save failed: %v", err))
	}
	m.FileName = name
	m.host.view = tracker.ViewID(name)
	m.Editor.MarkSaved()
	return m, m.setStatus(fmt.Sprintf("Saved %s", name))
}

func (m AppModel) updateSavePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.SaveInput.Value())
		m.SavePrompt = false
		m.SaveInput.Blur()
		if name == "" {
			return m, m.setStatus("Save cancelled")
		}
		return m.writeFile(name)
	case tea.KeyEsc:
		m.SavePrompt = false
		m.SaveInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.SaveInput, cmd = m.SaveInput.Update(msg)
	return m, cmd
}

func (m *AppModel) resizeEditor() {
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	editorWidth := width - 4
	if m.ShowPalette {
		editorWidth = width - paletteSidebarWidth - 6
	}
	if editorWidth < 10 {
		editorWidth = 10
	}
	editorHeight := height - 5 // title, borders, status bar
	if editorHeight < 3 {
		editorHeight = 3
	}
	m.Editor.SetSize(editorWidth, editorHeight)
}
