package store

import (
	"strings"

	"ticklist/internal/domain"
)

// Store is the single owner of one list's item sequence. All mutations go
// through its methods; each returns whether anything changed so the caller
// knows to forward a snapshot to persistence. Reorder yields a new slice so
// consumers relying on reference identity stay correct.
type Store struct {
	list domain.List
}

// New wraps an existing list.
func New(list domain.List) *Store {
	return &Store{list: list.Clone()}
}

// Snapshot returns a deep copy of the current list for persistence or
// rendering across an async boundary.
func (s *Store) Snapshot() domain.List {
	return s.list.Clone()
}

// Items returns the current item sequence. Callers must not mutate it.
func (s *Store) Items() []domain.Item {
	return s.list.Items
}

// Title returns the list title.
func (s *Store) Title() string {
	return s.list.Title
}

// Category returns the list category name.
func (s *Store) Category() string {
	return s.list.Category
}

// Add appends a new item built from text. Empty-after-trim text is a
// silent no-op. Items are only ever created at the tail.
func (s *Store) Add(text string) (domain.Item, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Item{}, false
	}
	item := domain.NewItem(trimmed)
	s.list.Items = append(s.list.Items, item)
	return item, true
}

// Remove deletes the item with the given id. No-op if absent.
func (s *Store) Remove(id string) bool {
	idx := s.list.FindItem(id)
	if idx < 0 {
		return false
	}
	s.list.Items = append(s.list.Items[:idx], s.list.Items[idx+1:]...)
	return true
}

// ToggleComplete flips the completion flag of the item with the given id.
func (s *Store) ToggleComplete(id string) bool {
	idx := s.list.FindItem(id)
	if idx < 0 {
		return false
	}
	s.list.Items[idx].Completed = !s.list.Items[idx].Completed
	return true
}

// UpdateText replaces an item's text in place, preserving id and position.
// Empty-after-trim text is a silent no-op.
func (s *Store) UpdateText(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	idx := s.list.FindItem(id)
	if idx < 0 {
		return false
	}
	s.list.Items[idx].Text = trimmed
	return true
}

// UpdateTitle replaces the list title. Empty-after-trim is a silent no-op.
func (s *Store) UpdateTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return false
	}
	s.list.Title = trimmed
	return true
}

// SetCategory assigns the list to a category.
func (s *Store) SetCategory(name string) bool {
	if name == "" || name == s.list.Category {
		return false
	}
	s.list.Category = name
	return true
}

// SetColor records the explicit list color ("" clears it back to the
// category default chain).
func (s *Store) SetColor(color string) {
	s.list.Color = color
}

// ReplaceItems swaps in a previously captured item sequence, used to abandon
// an in-progress reorder. The slice is copied.
func (s *Store) ReplaceItems(items []domain.Item) {
	s.list.Items = append([]domain.Item(nil), items...)
}

// Reorder moves the item with fromID to toIndex, returning a new slice with
// the relative order of all other items preserved. No-op when the id cannot
// be resolved or the index is out of range, which defends against commits
// built from a stale snapshot.
func (s *Store) Reorder(fromID string, toIndex int) bool {
	next, ok := Reorder(s.list.Items, fromID, toIndex)
	if !ok {
		return false
	}
	s.list.Items = next
	return true
}

// Reorder is the pure permutation underlying Store.Reorder: it returns a new
// slice with the element moved, or ok=false (and the original slice) when
// either endpoint cannot be resolved. A move to the element's own index is a
// valid no-op permutation and reports ok=true.
func Reorder(items []domain.Item, fromID string, toIndex int) ([]domain.Item, bool) {
	from := -1
	for i, it := range items {
		if it.ID == fromID {
			from = i
			break
		}
	}
	if from < 0 || toIndex < 0 || toIndex >= len(items) {
		return items, false
	}
	if from == toIndex {
		next := append([]domain.Item(nil), items...)
		return next, true
	}

	next := make([]domain.Item, 0, len(items))
	next = append(next, items[:from]...)
	next = append(next, items[from+1:]...)
	moved := items[from]
	next = append(next[:toIndex], append([]domain.Item{moved}, next[toIndex:]...)...)
	return next, true
}
