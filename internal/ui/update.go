package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/config"
	"ticklist/internal/debug"
	"ticklist/internal/suggest"
	"ticklist/internal/ui/theme"
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		w := msg.Width - 4
		if w < minDraftWidth {
			w = minDraftWidth
		}
		m.draft.SetWidth(w)
		return m, nil

	case saveDoneMsg:
		m.savesInFly--
		if msg.err != nil {
			debug.Logf("ui: save failed: %v", msg.err)
			return m, m.showToast(fmt.Sprintf("Save failed: %v", msg.err), true)
		}
		return m, nil

	case colorSaveDoneMsg:
		if msg.err == nil {
			m.color.Confirm(msg.saved)
			return m, nil
		}
		debug.Logf("ui: color save failed: %v", msg.err)
		if m.color.Rollback(msg.saved) {
			return m, m.showToast("Color could not be saved, reverted", true)
		}
		// A newer pick superseded the failed one; its own save decides.
		return m, nil

	case categorySaveDoneMsg:
		if msg.err != nil {
			debug.Logf("ui: category save failed: %v", msg.err)
			return m, m.showToast(fmt.Sprintf("Category %q not saved: %v", msg.name, msg.err), true)
		}
		return m, nil

	case suggestionResultMsg:
		if msg.err != nil {
			m.engine.Fail(msg.gen, msg.err)
		} else {
			m.engine.Resolve(msg.gen, msg.candidates)
		}
		return m, nil

	case debounceMsg:
		if m.mode != modeAdding || msg.gen != m.engine.Generation() {
			return m, nil
		}
		if gen, ok := m.engine.BeginFetch(); ok {
			return m, m.fetchSuggestionsCmd(gen)
		}
		return m, nil

	case toastTickMsg:
		if m.toastText == "" {
			return m, nil
		}
		if time.Now().After(m.toastUntil) {
			m.toastText = ""
			return m, nil
		}
		return m, scheduleToastTick()

	case yankDoneMsg:
		if msg.err != nil {
			return m, m.showToast(fmt.Sprintf("Copy failed: %v", msg.err), true)
		}
		return m, m.showToast("List copied to clipboard", false)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdding:
		return m.handleAddingKey(msg)
	case modeEditItem:
		return m.handleEditItemKey(msg)
	case modeEditTitle:
		return m.handleEditTitleKey(msg)
	case modeReorder:
		return m.handleReorderKey(msg)
	case modeColor:
		return m.handleColorKey(msg)
	case modeCategory:
		return m.handleCategoryKey(msg)
	case modeHelp, modePreview:
		m.mode = modeBrowse
		return m, nil
	}
	return m.handleBrowseKey(msg)
}

func (m *App) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.list.Items()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		if len(items) > 0 {
			m.cursor = len(items) - 1
		}

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.selectedItem(); ok && m.list.ToggleComplete(item.ID) {
			return m, m.saveCmd()
		}

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selectedItem(); ok && m.list.Remove(item.ID) {
			if m.cursor >= len(m.list.Items()) && m.cursor > 0 {
				m.cursor--
			}
			return m, m.saveCmd()
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdding
		return m, m.draft.Focus()

	case key.Matches(msg, m.keys.EditItem):
		if item, ok := m.selectedItem(); ok {
			m.mode = modeEditItem
			var cmd tea.Cmd
			m.edit, cmd = newItemEdit(item, m.width)
			return m, cmd
		}

	case key.Matches(msg, m.keys.EditTitle):
		m.mode = modeEditTitle
		var cmd tea.Cmd
		m.edit, cmd = newTitleEdit(m.list.Title(), m.width)
		return m, cmd

	case key.Matches(msg, m.keys.Grab):
		if item, ok := m.selectedItem(); ok {
			m.mode = modeReorder
			m.reorder = beginReorder(item.ID, items)
		}

	case key.Matches(msg, m.keys.Color):
		m.mode = modeColor
		m.picker = newColorPicker(m.color.Value())

	case key.Matches(msg, m.keys.Category):
		m.mode = modeCategory
		names := make([]string, 0)
		for _, c := range m.registry.Categories() {
			names = append(names, c.Name)
		}
		var cmd tea.Cmd
		m.catPick, cmd = newCategoryPicker(names, m.list.Category())
		return m, cmd

	case key.Matches(msg, m.keys.Yank):
		return m, m.yankCmd()

	case key.Matches(msg, m.keys.Preview):
		m.mode = modePreview

	case key.Matches(msg, m.keys.CycleTheme):
		name := theme.Cycle()
		return m, tea.Batch(m.showToast("Theme: "+name, false), saveThemeCmd(name))

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}

	return m, nil
}

// handleAddingKey implements the draft keyboard contract. Tab always
// belongs to the suggestion and never moves focus; ArrowRight accepts only
// with the caret at the end; Enter commits exactly what was typed.
func (m *App) handleAddingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		if text, ok := m.engine.Accept(); ok {
			m.draft.SetValue(text)
		}
		return m, nil

	case key.Matches(msg, m.keys.AcceptRight):
		if m.draft.AtEnd() {
			if text, ok := m.engine.Accept(); ok {
				m.draft.SetValue(text)
			}
			return m, nil
		}
		// Caret mid-text: plain cursor movement.

	case key.Matches(msg, m.keys.Escape):
		if m.draft.Value() != "" {
			m.engine.Clear()
			m.draft.Reset()
			return m, nil
		}
		m.draft.Blur()
		m.mode = modeBrowse
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.list.Add(m.draft.Value()); ok {
			m.engine.Reset()
			m.draft.Reset()
			m.cursor = len(m.list.Items()) - 1
			return m, m.saveCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	if m.draft.Value() != m.engine.Draft() {
		m.engine.SetDraft(m.draft.Value())
		if m.engine.Enabled() && m.draft.Value() != "" {
			return m, tea.Batch(cmd, scheduleDebounce(m.debounce, m.engine.Generation()))
		}
	}
	return m, cmd
}

func (m *App) handleEditItemKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if m.list.UpdateText(m.edit.itemID, m.edit.Value()) {
			m.mode = modeBrowse
			return m, m.saveCmd()
		}
		return m, m.showToast("Item text is required", true)

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

// handleEditTitleKey commits on any leave intent. An empty title falls back
// to the original rather than cancelling the whole edit.
func (m *App) handleEditTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
		if m.edit.Value() != m.edit.original && m.list.UpdateTitle(m.edit.Value()) {
			return m, m.saveCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

func (m *App) handleReorderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := m.reorder
	if sess == nil {
		m.mode = modeBrowse
		return m, nil
	}
	idx := m.grabbedIndex(sess.itemID)

	switch {
	case key.Matches(msg, m.keys.Up):
		if idx > 0 && m.list.Reorder(sess.itemID, idx-1) {
			m.cursor = idx - 1
		}
	case key.Matches(msg, m.keys.Down):
		if idx >= 0 && m.list.Reorder(sess.itemID, idx+1) {
			m.cursor = idx + 1
		}
	case key.Matches(msg, m.keys.Home):
		if m.list.Reorder(sess.itemID, 0) {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.End):
		if last := len(m.list.Items()) - 1; last >= 0 && m.list.Reorder(sess.itemID, last) {
			m.cursor = last
		}

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Grab):
		m.reorder = nil
		m.mode = modeBrowse
		return m, m.saveCmd()

	case key.Matches(msg, m.keys.Escape):
		m.list.ReplaceItems(sess.original)
		m.cursor = m.grabbedIndex(sess.itemID)
		m.reorder = nil
		m.mode = modeBrowse
	}

	return m, nil
}

func (m *App) grabbedIndex(id string) int {
	for i, it := range m.list.Items() {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (m *App) handleColorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "up", "k":
		m.picker.Move(-1)
		return m, nil
	case "right", "l", "down", "j":
		m.picker.Move(1)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Enter):
		m.mode = modeBrowse
		picked := m.picker.Selected()
		if m.color.Preview(picked) {
			return m, m.saveColorCmd(picked)
		}
		// Re-picking the confirmed color issues no save.
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *App) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The filter field owns the letters; only the arrow keys navigate.
	switch msg.String() {
	case "up":
		m.catPick.Move(-1)
		return m, nil
	case "down":
		m.catPick.Move(1)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Enter):
		m.mode = modeBrowse
		name, isNew, ok := m.catPick.Choice()
		if !ok {
			return m, nil
		}
		var cmds []tea.Cmd
		if isNew {
			cmds = append(cmds, m.registerCategoryCmd(name))
		}
		if m.list.SetCategory(name) {
			cmds = append(cmds, m.saveCmd())
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.catPick, cmd = m.catPick.Update(msg)
	return m, cmd
}

// saveCmd snapshots the whole list and persists it in the background.
// Mutations never wait on the write; a failure surfaces as a toast.
func (m *App) saveCmd() tea.Cmd {
	snap := m.list.Snapshot()
	snap.Color = m.color.Value()
	client := m.client
	m.savesInFly++
	return func() tea.Msg {
		return saveDoneMsg{err: client.UpdateList(context.Background(), snap)}
	}
}

// saveColorCmd persists a snapshot carrying the picked color. The value
// rides in the message so a late failure rolls back only its own preview.
func (m *App) saveColorCmd(value string) tea.Cmd {
	snap := m.list.Snapshot()
	snap.Color = value
	client := m.client
	return func() tea.Msg {
		return colorSaveDoneMsg{saved: value, err: client.UpdateList(context.Background(), snap)}
	}
}

func (m *App) registerCategoryCmd(name string) tea.Cmd {
	reg := m.registry
	return func() tea.Msg {
		return categorySaveDoneMsg{name: name, err: reg.AddCategory(context.Background(), name)}
	}
}

func (m *App) fetchSuggestionsCmd(gen int) tea.Cmd {
	sctx := suggest.Context{
		ListTitle:  m.list.Title(),
		Category:   m.list.Category(),
		Draft:      m.engine.Draft(),
		MaxResults: m.maxResults,
	}
	for _, it := range m.list.Items() {
		sctx.Items = append(sctx.Items, it.Text)
	}
	provider := m.provider
	return func() tea.Msg {
		candidates, err := provider.FetchSuggestions(context.Background(), sctx)
		return suggestionResultMsg{gen: gen, candidates: candidates, err: err}
	}
}

// saveThemeCmd persists the picked theme so the next launch keeps it.
func saveThemeCmd(name string) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveTheme(name); err != nil {
			debug.Logf("ui: theme save failed: %v", err)
		}
		return nil
	}
}

func (m *App) yankCmd() tea.Cmd {
	md := m.listMarkdown()
	return func() tea.Msg {
		return yankDoneMsg{err: clipboard.WriteAll(md)}
	}
}
