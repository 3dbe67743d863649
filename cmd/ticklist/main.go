package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/config"
	"ticklist/internal/debug"
	"ticklist/internal/domain"
	tlerrors "ticklist/internal/errors"
	"ticklist/internal/store"
	"ticklist/internal/suggest"
	"ticklist/internal/ui"
	"ticklist/internal/ui/theme"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	dbPathDefault := config.GetString(config.KeyDatabasePath)
	listIDDefault := config.GetString(config.KeyListID)
	themeDefault := config.GetString(config.KeyTheme)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log under ~/.ticklist")
	dbPathFlag := flag.String("db-path", dbPathDefault, "Path to the ticklist database file")
	listIDFlag := flag.String("list", listIDDefault, "ID of the list to open (default: first list, created if none)")
	themeFlag := flag.String("theme", themeDefault, "Color theme name")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Markdown preview style (rich, light, plain)")
	noSuggestFlag := flag.Bool("no-suggest", false, "Disable AI autocomplete for this run")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		dbPath:       dbPathFlag,
		listID:       listIDFlag,
		themeName:    themeFlag,
		outputFormat: outputFormatFlag,
		noSuggest:    noSuggestFlag,
	}, visited)

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	if runtime.themeName != "" && !theme.Set(runtime.themeName) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", runtime.themeName, theme.CurrentName())
	}

	dbPath, err := resolveDBPath(runtime.dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	client, err := store.NewSQLiteClient(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open database %s: %v\n", dbPath, err)
		os.Exit(1)
	}

	listID, err := resolveListID(client, runtime.listID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCfg := ui.Config{
		Client:       client,
		Provider:     buildProvider(runtime.suggestions),
		ListID:       listID,
		Version:      Version,
		OutputFormat: runtime.outputFormat,
		Debounce:     time.Duration(config.GetInt(config.KeySuggestionsDebounceMS)) * time.Millisecond,
		MaxResults:   config.GetInt(config.KeySuggestionsMaxResults),
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	dbPath       *string
	listID       *string
	themeName    *string
	outputFormat *string
	noSuggest    *bool
}

type runtimeOptions struct {
	dbPath       string
	listID       string
	themeName    string
	outputFormat string
	suggestions  bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	dbPath := strings.TrimSpace(config.GetString(config.KeyDatabasePath))
	if flagWasExplicitlySet("db-path", visited) {
		dbPath = strings.TrimSpace(*flags.dbPath)
	}

	listID := strings.TrimSpace(config.GetString(config.KeyListID))
	if flagWasExplicitlySet("list", visited) {
		listID = strings.TrimSpace(*flags.listID)
	}

	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.themeName)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	suggestions := config.GetBool(config.KeySuggestionsEnabled)
	if flagWasExplicitlySet("no-suggest", visited) && *flags.noSuggest {
		suggestions = false
	}

	return runtimeOptions{
		dbPath:       dbPath,
		listID:       listID,
		themeName:    themeName,
		outputFormat: outputFormat,
		suggestions:  suggestions,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

// resolveDBPath falls back to ~/.ticklist/ticklist.db when no path is
// configured, creating the data directory if needed.
func resolveDBPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	dir := filepath.Join(home, ".ticklist")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dir, "ticklist.db"), nil
}

// resolveListID picks the list for this run: the configured id, otherwise
// the first stored list, otherwise a fresh one.
func resolveListID(client store.Client, configured string) (string, error) {
	ctx := context.Background()

	if configured != "" {
		if _, err := client.GetList(ctx, configured); err != nil {
			if tlerrors.IsCode(err, tlerrors.CodeNotFound) {
				return "", fmt.Errorf("list %q not found", configured)
			}
			return "", err
		}
		return configured, nil
	}

	lists, err := client.Lists(ctx)
	if err != nil {
		return "", err
	}
	if len(lists) > 0 {
		return lists[0].ID, nil
	}

	list := domain.NewList("My List", "")
	if err := client.CreateList(ctx, list); err != nil {
		return "", fmt.Errorf("create initial list: %w", err)
	}
	debug.Logf("main: created initial list %s", list.ID)
	return list.ID, nil
}

// buildProvider wires the Gemini provider when suggestions are on and a key
// is present; otherwise autocomplete stays off and the editor runs as-is.
func buildProvider(enabled bool) suggest.Provider {
	if !enabled {
		return nil
	}
	keyEnv := config.GetString(config.KeySuggestionsAPIKeyEnv)
	apiKey := strings.TrimSpace(os.Getenv(keyEnv))
	if apiKey == "" {
		debug.Logf("main: %s unset, suggestions disabled", keyEnv)
		return nil
	}
	provider, err := suggest.NewGenAIProvider(context.Background(),
		apiKey, config.GetString(config.KeySuggestionsModel))
	if err != nil {
		debug.Logf("main: suggestion provider unavailable: %v", err)
		return nil
	}
	return provider
}
