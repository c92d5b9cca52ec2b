package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconVisible  = "✓" // Category shown in the palette
	IconHidden   = "·" // Category toggled off
	IconFocused  = "▸" // Focused pane / selected row marker
	IconModified = "●" // Unsaved editor changes
	IconNotice   = "◆" // Status-bar toast prefix
)
