// Package registry provides the category registry shared by every list in
// the host application. It is an explicitly injected reference, not a
// global: construct one and pass it to each list that needs it. Writes are
// immediately visible to every reader.
package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ticklist/internal/domain"
	tlerrors "ticklist/internal/errors"
	"ticklist/internal/store"
)

// Registry is the shared category store. It keeps an in-memory view for
// synchronous reads and forwards writes to the persistence client.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]domain.Category
	client store.Client
}

// New constructs a registry backed by client. The initial view is seeded
// from cats (typically loaded at startup).
func New(client store.Client, cats []domain.Category) *Registry {
	byName := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		byName[c.Name] = c
	}
	return &Registry{byName: byName, client: client}
}

// Categories returns a sorted snapshot of all categories.
func (r *Registry) Categories() []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Category, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ColorFor returns the default color for a category name, "" when the
// category is unknown or has no color.
func (r *Registry) ColorFor(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name].Color
}

// Has reports whether a category with the given name exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// AddCategory registers a new category and persists it. The local view is
// updated first so every list sees the category immediately; persistence
// failure is returned for the caller to surface.
func (r *Registry) AddCategory(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return tlerrors.New(tlerrors.CodeEmptyText, "category name is required", nil)
	}

	cat := domain.Category{Name: trimmed}
	r.mu.Lock()
	if _, exists := r.byName[trimmed]; exists {
		r.mu.Unlock()
		return nil
	}
	r.byName[trimmed] = cat
	r.mu.Unlock()

	return r.client.AddCategory(ctx, cat)
}

// UpdateColor changes a category's default color and persists it.
func (r *Registry) UpdateColor(ctx context.Context, name, color string) error {
	r.mu.Lock()
	cat, ok := r.byName[name]
	if !ok {
		r.mu.Unlock()
		return tlerrors.New(tlerrors.CodeNotFound, "category "+name+" not found", nil)
	}
	cat.Color = color
	r.byName[name] = cat
	r.mu.Unlock()

	return r.client.UpdateCategoryColor(ctx, name, color)
}

// Revert restores a category's color in the local view after a failed
// persist, keeping the shared view consistent with the store.
func (r *Registry) Revert(name, color string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cat, ok := r.byName[name]; ok {
		cat.Color = color
		r.byName[name] = cat
	}
}
