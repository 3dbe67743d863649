// Package domain holds the core data model for ticklist: lists, items,
// categories, and the pure derivations (progress, display color) over them.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Item is one entry in a list. The id is stable for the item's lifetime;
// order is positional in the containing slice, never a stored field.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// List is an ordered collection of items plus its display metadata.
// Color is optional; when empty, display color falls back to the category
// default and then to the neutral fallback (see DisplayColor).
type List struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color,omitempty"`
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Category pairs a shared category name with its default color.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewItem mints an item with a fresh id. Callers must validate text first;
// the constructor does not trim.
func NewItem(text string) Item {
	return Item{ID: uuid.NewString(), Text: text}
}

// NewList mints an empty list with a fresh id.
func NewList(title, category string) List {
	return List{ID: uuid.NewString(), Title: title, Category: category}
}

// ValidText reports whether text is acceptable for an item or title:
// non-empty after trimming.
func ValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

// Clone returns a deep copy of the list. The items slice is copied so the
// caller can hand the result across an async boundary without sharing.
func (l List) Clone() List {
	cp := l
	cp.Items = append([]Item(nil), l.Items...)
	return cp
}

// FindItem returns the index of the item with the given id, or -1.
func (l List) FindItem(id string) int {
	for i, it := range l.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
