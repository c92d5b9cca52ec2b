package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ipapad/internal/model"
)

// SettingsState is the cursor inside the settings overlay.
type SettingsState struct {
	Cursor int // index into the store's current order
}

func (s SettingsState) clampTo(n int) SettingsState {
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	return s
}

// toggleSelected flips visibility of the category under the cursor.
// Persistence errors surface on the status bar; the in-memory flag is
// already flipped either way.
func (m *AppModel) toggleSelected() {
	order := m.Store.Order()
	s := m.Settings.clampTo(len(order))
	name := order[s.Cursor]
	if err := m.Store.SetVisibility(name, !m.Store.Visible(name)); err != nil {
		m.Status = fmt.Sprintf("Save failed: %v", err)
	}
}

// moveSelected shifts the category under the cursor by delta and keeps
// the cursor on it.
func (m *AppModel) moveSelected(delta int) {
	order := m.Store.Order()
	s := m.Settings.clampTo(len(order))
	name := order[s.Cursor]
	newIndex := s.Cursor + delta
	if err := m.Store.Reorder(name, newIndex); err != nil {
		// In-memory order already moved; only the save failed.
		m.Status = fmt.Sprintf("Save failed: %v", err)
	}
	// Follow the moved row (Reorder clamps, so re-find it).
	for i, n := range m.Store.Order() {
		if n == name {
			m.Settings.Cursor = i
			break
		}
	}
}

// renderSettings draws the settings dialog centered over the app.
func (m AppModel) renderSettings() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	order := m.Store.Order()
	s := m.Settings.clampTo(len(order))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Palette Settings"))
	sb.WriteString("\n\n")

	for i, name := range order {
		cat, ok := model.CategoryByName(name)
		if !ok {
			continue
		}
		icon := model.IconHidden
		if m.Store.Visible(name) {
			icon = model.IconVisible
		}
		line := fmt.Sprintf("%s %s", icon, cat.Title)
		if i == s.Cursor {
			sb.WriteString(selectedItemStyle.Render(model.IconFocused + " " + line))
		} else {
			sb.WriteString(unselectedItemStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("space: show/hide • K/J: reorder • esc: close"))

	dialog := lipgloss.NewStyle().
		Width(44).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(sb.String())

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}
