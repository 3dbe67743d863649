package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/debug"
	"ticklist/internal/domain"
	"ticklist/internal/registry"
	"ticklist/internal/store"
	"ticklist/internal/suggest"
)

const (
	minDraftWidth   = 24
	defaultDebounce = 300 * time.Millisecond
	toastDuration   = 5 * time.Second
)

// Config configures the UI application.
type Config struct {
	Client       store.Client
	Registry     *registry.Registry
	Provider     suggest.Provider // nil disables autocomplete
	ListID       string
	Version      string
	OutputFormat string
	Debounce     time.Duration
	MaxResults   int
}

// App implements the Bubble Tea model for ticklist. All state transitions
// happen inside Update; async work is expressed as commands whose results
// come back as messages, so no mutation ever races another.
type App struct {
	keys     KeyMap
	client   store.Client
	registry *registry.Registry
	provider suggest.Provider

	list   *store.Store
	color  store.Optimistic[string]
	engine *suggest.Engine

	mode    mode
	cursor  int
	draft   draftInput
	edit    editSession
	reorder *reorderSession
	picker  colorPicker
	catPick categoryPicker

	width  int
	height int
	ready  bool

	version      string
	outputFormat string
	debounce     time.Duration
	maxResults   int

	toastText  string
	toastIsErr bool
	toastUntil time.Time
	savesInFly int
}

// NewApp loads the list and builds the model. A missing list id is an
// error; the host shell creates the list before constructing the app.
func NewApp(cfg Config) (*App, error) {
	list, err := cfg.Client.GetList(context.Background(), cfg.ListID)
	if err != nil {
		return nil, err
	}

	cats, err := cfg.Client.Categories(context.Background())
	if err != nil {
		return nil, err
	}
	reg := cfg.Registry
	if reg == nil {
		reg = registry.New(cfg.Client, cats)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 1
	}

	app := &App{
		keys:         DefaultKeyMap(),
		client:       cfg.Client,
		registry:     reg,
		provider:     cfg.Provider,
		list:         store.New(list),
		color:        store.NewOptimistic(list.Color),
		engine:       suggest.NewEngine(cfg.Provider != nil),
		draft:        newDraftInput(60),
		version:      cfg.Version,
		outputFormat: cfg.OutputFormat,
		debounce:     debounce,
		maxResults:   maxResults,
	}
	debug.Logf("ui: loaded list %s with %d items", list.ID, len(list.Items))
	return app, nil
}

func (m *App) Init() tea.Cmd {
	return nil
}

// selectedItem returns the item under the cursor, ok=false on an empty list.
func (m *App) selectedItem() (domain.Item, bool) {
	items := m.list.Items()
	if len(items) == 0 {
		return domain.Item{}, false
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return items[m.cursor], true
}

// displayColor resolves the header color through the fallback chain:
// explicit preview value, then the category default, then neutral grey.
func (m *App) displayColor() string {
	snap := m.list.Snapshot()
	snap.Color = m.color.Value()
	return domain.DisplayColor(snap, m.registry.ColorFor(snap.Category))
}

func (m *App) showToast(text string, isErr bool) tea.Cmd {
	m.toastText = text
	m.toastIsErr = isErr
	m.toastUntil = time.Now().Add(toastDuration)
	return scheduleToastTick()
}
