package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"ticklist/internal/domain"
	"ticklist/internal/store"
	"ticklist/internal/suggest"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testListFixture(items ...string) domain.List {
	list := domain.NewList("Groceries", "")
	list.ID = "list-1"
	for _, text := range items {
		list.Items = append(list.Items, domain.NewItem(text))
	}
	return list
}

func newTestApp(t *testing.T, list domain.List, provider suggest.Provider) (*App, *store.MockClient) {
	t.Helper()
	mock := store.NewMockClient()
	mock.GetListFn = func(context.Context, string) (domain.List, error) {
		return list.Clone(), nil
	}
	mock.CategoriesFn = func(context.Context) ([]domain.Category, error) {
		return []domain.Category{{Name: "errands", Color: "#00ff00"}}, nil
	}

	app, err := NewApp(Config{
		Client:     mock,
		Provider:   provider,
		ListID:     list.ID,
		Debounce:   time.Millisecond,
		MaxResults: 1,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app, mock
}

func pressKey(app *App, keyType tea.KeyType) tea.Cmd {
	_, cmd := app.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func pressRune(app *App, r rune) tea.Cmd {
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func typeString(app *App, s string) {
	for _, r := range s {
		pressRune(app, r)
	}
}

// collectMsgs executes a command tree, flattening batches, and returns every
// resulting message in order.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver executes a command and feeds every resulting message back into the
// model, one round deep.
func deliver(app *App, cmd tea.Cmd) {
	for _, msg := range collectMsgs(cmd) {
		app.Update(msg)
	}
}

func itemTexts(app *App) []string {
	var out []string
	for _, it := range app.list.Items() {
		out = append(out, it.Text)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
