package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ticklist/internal/ui/theme"
)

// colorChoices is the fixed swatch palette. The leading empty entry clears
// the explicit color so the category default (or fallback grey) shows
// through again.
var colorChoices = []string{
	"",
	"#f7768e", // red
	"#ff9e64", // orange
	"#e0af68", // yellow
	"#9ece6a", // green
	"#73daca", // teal
	"#7dcfff", // cyan
	"#7aa2f7", // blue
	"#bb9af7", // purple
	"#c0caf5", // white
}

// colorPicker is the swatch chooser overlay. Selection is previewed
// optimistically by the app; the picker only tracks the highlighted swatch.
type colorPicker struct {
	index int
}

func newColorPicker(current string) colorPicker {
	p := colorPicker{}
	for i, c := range colorChoices {
		if strings.EqualFold(c, current) {
			p.index = i
			break
		}
	}
	return p
}

func (p *colorPicker) Move(delta int) {
	next := p.index + delta
	if next < 0 {
		next = len(colorChoices) - 1
	}
	if next >= len(colorChoices) {
		next = 0
	}
	p.index = next
}

func (p colorPicker) Selected() string {
	return colorChoices[p.index]
}

func (p colorPicker) View() string {
	var swatches []string
	for i, c := range colorChoices {
		block := "  "
		if c == "" {
			block = "✕ "
		}
		cell := lipgloss.NewStyle().Background(lipgloss.Color(c)).Render(block)
		if c == "" {
			cell = lipgloss.NewStyle().Foreground(theme.Current().TextMuted).Render(block)
		}
		if i == p.index {
			swatches = append(swatches, styleSwatchSelected().Render(cell))
		} else {
			swatches = append(swatches, styleSwatch().Render(cell))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, swatches...)

	label := p.Selected()
	if label == "" {
		label = "category default"
	}
	title := styleOverlayTitle().Render("List color")
	hint := stylePickerHint().Render("←/→ choose · ⏎ apply · Esc close")
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		row,
		stylePickerHint().Render(label),
		"",
		hint,
	)
	return styleOverlayBox().Render(body)
}
