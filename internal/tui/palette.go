package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ipapad/internal/buffer"
	"ipapad/internal/model"
)

var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	symbolSelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
)

// paletteColumns is the symbol grid width in cells per row.
const paletteColumns = 8

// PaletteState is the cursor inside the palette panel: a section of the
// render plan and a symbol index within it.
type PaletteState struct {
	Section int
	Index   int
}

// clampTo keeps the cursor valid against the current render plan,
// e.g. after a category was hidden or reordered.
func (p PaletteState) clampTo(plan []model.Category) PaletteState {
	if len(plan) == 0 {
		return PaletteState{}
	}
	if p.Section < 0 {
		p.Section = 0
	}
	if p.Section >= len(plan) {
		p.Section = len(plan) - 1
	}
	n := len(plan[p.Section].Symbols)
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Index >= n {
		p.Index = n - 1
	}
	return p
}

// Selected returns the symbol under the palette cursor.
func (p PaletteState) Selected(plan []model.Category) (string, bool) {
	if len(plan) == 0 {
		return "", false
	}
	p = p.clampTo(plan)
	return plan[p.Section].Symbols[p.Index], true
}

func (p PaletteState) moveLeft(plan []model.Category) PaletteState {
	p = p.clampTo(plan)
	if len(plan) == 0 {
		return p
	}
	if p.Index > 0 {
		p.Index--
	}
	return p
}

func (p PaletteState) moveRight(plan []model.Category) PaletteState {
	p = p.clampTo(plan)
	if len(plan) == 0 {
		return p
	}
	if p.Index < len(plan[p.Section].Symbols)-1 {
		p.Index++
	}
	return p
}

// moveUp walks one grid row up, crossing into the previous section
// from its top row.
func (p PaletteState) moveUp(plan []model.Category) PaletteState {
	p = p.clampTo(plan)
	if len(plan) == 0 {
		return p
	}
	if p.Index >= paletteColumns {
		p.Index -= paletteColumns
		return p
	}
	if p.Section == 0 {
		return p
	}
	p.Section--
	col := p.Index % paletteColumns
	n := len(plan[p.Section].Symbols)
	lastRowStart := ((n - 1) / paletteColumns) * paletteColumns
	p.Index = lastRowStart + col
	if p.Index >= n {
		p.Index = n - 1
	}
	return p
}

// moveDown walks one grid row down, crossing into the next section
// from the bottom row.
func (p PaletteState) moveDown(plan []model.Category) PaletteState {
	p = p.clampTo(plan)
	if len(plan) == 0 {
		return p
	}
	n := len(plan[p.Section].Symbols)
	if p.Index+paletteColumns < n {
		p.Index += paletteColumns
		return p
	}
	if p.Section == len(plan)-1 {
		return p
	}
	col := p.Index % paletteColumns
	p.Section++
	p.Index = col
	if p.Index >= len(plan[p.Section].Symbols) {
		p.Index = len(plan[p.Section].Symbols) - 1
	}
	return p
}

// displayGlyph renders a symbol for the palette grid. Combining marks
// are zero-width on their own, so they sit on a dotted circle the way
// IPA charts print them.
func displayGlyph(sym string) string {
	if buffer.Width(sym) == 0 {
		return "◌" + sym
	}
	return sym
}

// renderPalette draws the panel body from the store's render plan.
func (m AppModel) renderPalette() string {
	plan := m.Store.RenderPlan()
	state := m.Palette.clampTo(plan)
	active := m.Focus == focusPalette

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("IPA Palette"))
	sb.WriteString("\n")

	if len(plan) == 0 {
		sb.WriteString("\n" + dimStyle.Render("All categories hidden."))
		sb.WriteString("\n" + dimStyle.Render("Open settings (ctrl+g) to enable some."))
		return sb.String()
	}

	for si, cat := range plan {
		sb.WriteString("\n")
		sb.WriteString(sectionTitleStyle.Render(cat.Title))
		sb.WriteString("\n")

		for i, sym := range cat.Symbols {
			if i > 0 && i%paletteColumns == 0 {
				sb.WriteString("\n")
			}
			cell := displayGlyph(sym)
			// Pad to a fixed cell width so columns line up.
			pad := 3 - buffer.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if active && si == state.Section && i == state.Index {
				sb.WriteString(symbolSelStyle.Render(cell))
			} else {
				sb.WriteString(symbolStyle.Render(cell))
			}
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
