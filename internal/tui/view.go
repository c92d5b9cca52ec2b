package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ipapad/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

// paletteSidebarWidth is the interior width of the palette panel.
const paletteSidebarWidth = 30

func (m AppModel) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width == 0 {
		return "\n  Loading...\n"
	}

	borderColor := lipgloss.Color("63")
	activeColor := lipgloss.Color("205")

	interiorHeight := height - 5
	if interiorHeight < 3 {
		interiorHeight = 3
	}

	// Editor pane
	editorWidth := width - 4
	if m.ShowPalette {
		editorWidth = width - paletteSidebarWidth - 6
	}
	if editorWidth < 10 {
		editorWidth = 10
	}

	edBorder := borderColor
	if m.Focus == focusEditor {
		edBorder = activeColor
	}
	editorBox := lipgloss.NewStyle().
		Width(editorWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(edBorder).
		Render(m.Editor.View())

	mainView := editorBox
	if m.ShowPalette {
		palBorder := borderColor
		if m.Focus == focusPalette {
			palBorder = activeColor
		}
		paletteBox := lipgloss.NewStyle().
			Width(paletteSidebarWidth).
			Height(interiorHeight).
			Border(lipgloss.NormalBorder()).
			BorderForeground(palBorder).
			Render(m.renderPalette())
		mainView = lipgloss.JoinHorizontal(lipgloss.Top, editorBox, paletteBox)
	}

	header := titleStyle.Render("ipapad") + "  " + dimStyle.Render(m.headerInfo())

	view := header + "\n" + mainView + m.footer()

	if m.Focus == focusSettings {
		return m.renderSettings()
	}
	return view
}

func (m AppModel) headerInfo() string {
	name := m.FileName
	if name == "" {
		name = "[scratch]"
	}
	if m.Editor.Dirty() {
		name += " " + model.IconModified
	}
	cur := m.Editor.Cursor()
	return fmt.Sprintf("%s  %d:%d", name, cur.Line+1, cur.Ch+1)
}

func (m AppModel) footer() string {
	if m.SavePrompt {
		return fmt.Sprintf("\nSave as: %s", m.SaveInput.View())
	}
	if m.Status != "" {
		return "\n" + statusStyle.Render(model.IconNotice+" "+m.Status)
	}

	help := "ctrl+p: palette • ctrl+g: settings • ctrl+s: save • ctrl+c: quit"
	if m.Focus == focusPalette {
		help = "↑/↓/←/→: navigate • enter: insert • tab: editor • esc: close • ctrl+c: quit"
	}
	return "\n" + dimStyle.Render(help)
}
