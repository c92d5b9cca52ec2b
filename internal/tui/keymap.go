package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. Editing keys live
// in the editor pane; these are the chrome.
type KeyMap struct {
	Quit     key.Binding
	Palette  key.Binding
	Settings key.Binding
	Save     key.Binding
	CycleFoc key.Binding
	Close    key.Binding

	Up, Down, Left, Right key.Binding
	Select                key.Binding
	Toggle                key.Binding
	MoveUp, MoveDown      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Palette:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "palette")),
		Settings: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "settings")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		CycleFoc: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		// Reorder uses shifted vim keys so plain j/k stay navigation.
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
	}
}
