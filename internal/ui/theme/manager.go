package theme

import (
	"sort"
	"sync"
)

var registry = struct {
	mu       sync.RWMutex
	palettes map[string]Palette
	current  string
}{
	palettes: make(map[string]Palette),
}

// Register adds a palette under its Name. The first registered palette
// becomes the default.
func Register(p Palette) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.palettes[p.Name] = p
	if registry.current == "" {
		registry.current = p.Name
	}
}

// Set switches to a registered palette by name. Returns false when the
// name is unknown, leaving the current palette untouched.
func Set(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.palettes[name]; !ok {
		return false
	}
	registry.current = name
	return true
}

// Current returns the active palette.
func Current() Palette {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.palettes[registry.current]
}

// CurrentName returns the name of the active palette.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// Available returns all registered palette names, sorted.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return sortedNames()
}

// Cycle switches to the next palette in sorted order, wrapping at the end,
// and returns its name.
func Cycle() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	names := sortedNames()
	if len(names) == 0 {
		return ""
	}
	idx := sort.SearchStrings(names, registry.current)
	if idx >= len(names) || names[idx] != registry.current {
		idx = -1
	}
	registry.current = names[(idx+1)%len(names)]
	return registry.current
}

// sortedNames must be called with the registry lock held.
func sortedNames() []string {
	names := make([]string, 0, len(registry.palettes))
	for name := range registry.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
