package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// draftInput is the add-item field at the bottom of the list. It embeds a
// bubbles textinput and renders suggestion ghost text inline after the
// typed prefix.
type draftInput struct {
	input   textinput.Model
	width   int
	focused bool
}

func newDraftInput(width int) draftInput {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Placeholder = "Add an item..."
	ti.Prompt = "> "
	ti.Width = width - 4 // border padding
	return draftInput{input: ti, width: width}
}

func (d *draftInput) Focus() tea.Cmd {
	d.focused = true
	return d.input.Focus()
}

func (d *draftInput) Blur() {
	d.focused = false
	d.input.Blur()
}

func (d draftInput) Focused() bool {
	return d.focused
}

func (d draftInput) Value() string {
	return d.input.Value()
}

func (d *draftInput) SetValue(v string) {
	d.input.SetValue(v)
	d.input.CursorEnd()
}

func (d *draftInput) Reset() {
	d.input.SetValue("")
}

func (d *draftInput) SetWidth(w int) {
	d.width = w
	d.input.Width = w - 4
}

// AtEnd reports whether the caret sits after the last typed character,
// the only position where ArrowRight accepts the suggestion.
func (d draftInput) AtEnd() bool {
	return d.input.Position() >= len([]rune(d.input.Value()))
}

func (d draftInput) Update(msg tea.Msg) (draftInput, tea.Cmd) {
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// View renders the field. A non-empty ghost is painted after the typed text:
// its first character doubles as an inverted block cursor, the rest in
// muted foreground.
func (d draftInput) View(ghost string) string {
	boxStyle := styleDraftInput()
	if d.focused {
		boxStyle = styleDraftInputFocused()
	}

	if ghost == "" || !d.focused || !d.AtEnd() {
		return boxStyle.Width(d.width).Render(d.input.View())
	}

	runes := []rune(ghost)
	cursorChar := styleGhostCursor().Render(string(runes[0]))
	rest := ""
	if len(runes) > 1 {
		rest = styleGhostText().Render(string(runes[1:]))
	}
	inline := d.input.Prompt + d.input.Value() + cursorChar + rest
	return boxStyle.Width(d.width).Render(inline)
}
