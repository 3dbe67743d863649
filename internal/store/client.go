// Package store owns the ordered item sequence for a list and the
// persistence boundary behind it. Mutations are synchronous; callers persist
// the resulting snapshot through a Client, typically fire-and-forget.
package store

import (
	"context"

	"ticklist/internal/domain"
)

// Client defines the persistence collaborator. Implementations accept full
// list snapshots; partial updates are not part of the contract.
type Client interface {
	Lists(ctx context.Context) ([]domain.List, error)
	GetList(ctx context.Context, id string) (domain.List, error)
	CreateList(ctx context.Context, list domain.List) error
	// UpdateList replaces the stored list, items and order included.
	UpdateList(ctx context.Context, list domain.List) error
	DeleteList(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]domain.Category, error)
	AddCategory(ctx context.Context, cat domain.Category) error
	UpdateCategoryColor(ctx context.Context, name, color string) error
}
