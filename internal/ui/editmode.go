package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/domain"
)

// mode is the single interaction mode the app is in. Item editing, title
// editing, reordering, and the pickers are mutually exclusive: entering one
// leaves the previous one first.
type mode int

const (
	modeBrowse mode = iota
	modeAdding
	modeEditItem
	modeEditTitle
	modeReorder
	modeColor
	modeCategory
	modeHelp
	modePreview
)

// editSession holds an in-progress inline edit of one item's text or of the
// list title (itemID empty).
type editSession struct {
	itemID   string
	original string
	input    textinput.Model
}

func newItemEdit(item domain.Item, width int) (editSession, tea.Cmd) {
	return newEdit(item.ID, item.Text, width)
}

func newTitleEdit(title string, width int) (editSession, tea.Cmd) {
	return newEdit("", title, width)
}

func newEdit(itemID, text string, width int) (editSession, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Prompt = ""
	ti.Width = width - 4
	ti.SetValue(text)
	ti.CursorEnd()
	cmd := ti.Focus()
	return editSession{itemID: itemID, original: text, input: ti}, cmd
}

func (e editSession) Update(msg tea.Msg) (editSession, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e editSession) Value() string {
	return e.input.Value()
}

// reorderSession tracks a grabbed item. The original order is captured at
// grab time so Escape can restore it exactly.
type reorderSession struct {
	itemID   string
	original []domain.Item
}

func beginReorder(itemID string, items []domain.Item) *reorderSession {
	return &reorderSession{
		itemID:   itemID,
		original: append([]domain.Item(nil), items...),
	}
}
