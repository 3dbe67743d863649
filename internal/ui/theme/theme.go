// Package theme provides the semantic color system for the ticklist UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the semantic colors the UI styles are built from. Every
// field is an AdaptiveColor so both light and dark terminals render
// sensibly without per-terminal configuration.
type Palette struct {
	Name string

	// Base colors
	Primary   lipgloss.AdaptiveColor // main accent (focused borders, header)
	Secondary lipgloss.AdaptiveColor // secondary accent (labels, hints)
	Accent    lipgloss.AdaptiveColor // highlights (titles, swatches)

	// Status colors
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Text colors
	Text           lipgloss.AdaptiveColor
	TextMuted      lipgloss.AdaptiveColor // ghost text, completed items
	TextEmphasized lipgloss.AdaptiveColor

	// Background colors
	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor // selected rows, modals
	BackgroundDarker    lipgloss.AdaptiveColor // badges, chips

	// Border colors
	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
	BorderDim     lipgloss.AdaptiveColor
}
