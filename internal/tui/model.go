package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ipapad/internal/config"
	"ipapad/internal/tracker"
)

// focusArea says which surface owns the keyboard.
type focusArea int

const (
	focusEditor focusArea = iota
	focusPalette
	focusSettings
)

// hostState is the focus/notification state shared with the tracker.
// Bubble Tea copies AppModel by value on every update, so the
// tracker's collaborators live behind this pointer.
type hostState struct {
	editor        *EditorPane
	view          tracker.ViewID
	editorFocused bool

	notice string // pending toast posted by the tracker
}

func (h *hostState) ActiveEditor() (tracker.Editor, tracker.ViewID, bool) {
	if !h.editorFocused || h.editor == nil {
		return nil, "", false
	}
	return h.editor, h.view, true
}

func (h *hostState) postNotice(msg string) { h.notice = msg }

func (h *hostState) takeNotice() (string, bool) {
	if h.notice == "" {
		return "", false
	}
	msg := h.notice
	h.notice = ""
	return msg, true
}

// AppModel holds the TUI state.
type AppModel struct {
	Store   *config.Store
	Tracker *tracker.Tracker

	Editor   *EditorPane
	FileName string // "" for an unsaved scratch buffer

	// UI State
	Focus       focusArea
	ShowPalette bool
	WindowSize  tea.WindowSizeMsg

	Palette  PaletteState
	Settings SettingsState

	// Save-as prompt for buffers without a filename.
	SavePrompt bool
	SaveInput  textinput.Model

	Status    string // transient status-bar toast
	StatusSeq int

	host *hostState
	keys KeyMap
}

// NewApp wires the store, tracker, and editor pane together.
func NewApp(store *config.Store, fileName, text string) AppModel {
	host := &hostState{}
	ed := NewEditorPane(text)

	host.editor = ed
	host.view = tracker.ViewID(viewIDFor(fileName))
	host.editorFocused = true
	ed.focused = true

	ti := textinput.New()
	ti.Placeholder = "filename.txt"
	ti.CharLimit = 120
	ti.Width = 32

	m := AppModel{
		Store:     store,
		Tracker:   tracker.New(host, host.postNotice),
		Editor:    ed,
		FileName:  fileName,
		Focus:     focusEditor,
		SaveInput: ti,
		host:      host,
		keys:      DefaultKeyMap(),
	}
	// The editor starts focused; report it like any other focus change.
	m.Tracker.OnFocusChanged()
	return m
}

func viewIDFor(fileName string) string {
	if fileName == "" {
		return "scratch"
	}
	return fileName
}

// setFocus moves keyboard ownership and reports the change to the
// tracker, once per transition, in dispatch order.
func (m *AppModel) setFocus(area focusArea) {
	m.Focus = area
	m.host.editorFocused = area == focusEditor
	m.Editor.focused = area == focusEditor
	m.Tracker.OnFocusChanged()
}

func (m AppModel) Init() tea.Cmd {
	return nil
}
