package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the application.
// Each binding includes the actual keys and help text for display.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Item actions
	Toggle   key.Binding
	Add      key.Binding
	EditItem key.Binding
	Delete   key.Binding
	Grab     key.Binding

	// List actions
	EditTitle  key.Binding
	Color      key.Binding
	Category   key.Binding
	Yank       key.Binding
	Preview    key.Binding
	CycleTheme key.Binding

	// Editing
	Enter       key.Binding
	Tab         key.Binding
	AcceptRight key.Binding
	Escape      key.Binding

	// Misc
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings for ticklist.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation - Up/Down share help text (displayed as single row)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home  g", "Jump to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End   G", "Jump to bottom"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "Toggle done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add item"),
		),
		EditItem: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit item"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "Delete item"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Move item"),
		),

		EditTitle: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Edit title"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Pick color"),
		),
		Category: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Set category"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy list"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Preview markdown"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Cycle theme"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎ (Enter)", "Commit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥ (Tab)", "Accept suggestion"),
		),
		AcceptRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Accept at end"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Clear/cancel"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}
