package store

import (
	"testing"

	"ticklist/internal/domain"
)

func newTestStore(texts ...string) *Store {
	s := New(domain.List{ID: "l1", Title: "Groceries", Category: "home"})
	for _, txt := range texts {
		s.Add(txt)
	}
	return s
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestAdd(t *testing.T) {
	t.Run("AppendsAtTail", func(t *testing.T) {
		s := newTestStore("Milk", "Eggs")
		item, ok := s.Add("Bread")
		if !ok {
			t.Fatal("Add returned ok=false for valid text")
		}
		items := s.Items()
		if len(items) != 3 {
			t.Fatalf("len = %d, want 3", len(items))
		}
		if items[2].ID != item.ID || items[2].Text != "Bread" {
			t.Errorf("tail item = %+v, want the added one", items[2])
		}
		if items[2].Completed {
			t.Error("new item should start uncompleted")
		}
	})

	t.Run("TrimsText", func(t *testing.T) {
		s := newTestStore()
		item, ok := s.Add("  Milk  ")
		if !ok || item.Text != "Milk" {
			t.Errorf("Add trimmed = %q, want Milk", item.Text)
		}
	})

	t.Run("EmptyTextIsNoOp", func(t *testing.T) {
		s := newTestStore("Milk")
		if _, ok := s.Add("   "); ok {
			t.Error("Add of blank text should be a no-op")
		}
		if len(s.Items()) != 1 {
			t.Errorf("len = %d, want 1", len(s.Items()))
		}
	})

	t.Run("FreshUniqueIDs", func(t *testing.T) {
		s := newTestStore("a", "b", "c")
		seen := map[string]bool{}
		for _, it := range s.Items() {
			if seen[it.ID] {
				t.Fatalf("duplicate id %s", it.ID)
			}
			seen[it.ID] = true
		}
	})
}

func TestRemove(t *testing.T) {
	s := newTestStore("Milk", "Eggs", "Bread")
	target := s.Items()[1].ID

	if !s.Remove(target) {
		t.Fatal("Remove returned false for existing id")
	}
	if len(s.Items()) != 2 {
		t.Fatalf("len = %d, want 2", len(s.Items()))
	}
	if s.Items()[0].Text != "Milk" || s.Items()[1].Text != "Bread" {
		t.Errorf("remaining order wrong: %v", s.Items())
	}

	if s.Remove("missing") {
		t.Error("Remove of absent id should be a no-op")
	}
}

func TestToggleComplete(t *testing.T) {
	s := newTestStore("Milk")
	id := s.Items()[0].ID

	if !s.ToggleComplete(id) {
		t.Fatal("ToggleComplete returned false")
	}
	if !s.Items()[0].Completed {
		t.Error("item should be completed after toggle")
	}
	s.ToggleComplete(id)
	if s.Items()[0].Completed {
		t.Error("item should be uncompleted after second toggle")
	}
	if s.ToggleComplete("missing") {
		t.Error("toggle of absent id should be a no-op")
	}
}

func TestUpdateText(t *testing.T) {
	s := newTestStore("Milk", "Eggs")
	id := s.Items()[0].ID

	if !s.UpdateText(id, "Oat milk") {
		t.Fatal("UpdateText returned false")
	}
	items := s.Items()
	if items[0].Text != "Oat milk" {
		t.Errorf("text = %q, want Oat milk", items[0].Text)
	}
	if items[0].ID != id {
		t.Error("UpdateText must preserve the item id")
	}

	if s.UpdateText(id, "  ") {
		t.Error("empty text should be a no-op")
	}
	if items := s.Items(); items[0].Text != "Oat milk" {
		t.Errorf("text changed by rejected update: %q", items[0].Text)
	}
}

func TestReorderPermutationPurity(t *testing.T) {
	s := newTestStore("a", "b", "c", "d", "e")
	before := ids(s.Items())

	for from := 0; from < len(before); from++ {
		for to := 0; to < len(before); to++ {
			s := newTestStore("a", "b", "c", "d", "e")
			orig := ids(s.Items())
			if !s.Reorder(orig[from], to) {
				t.Fatalf("Reorder(%d->%d) returned false", from, to)
			}
			after := ids(s.Items())

			if len(after) != len(orig) {
				t.Fatalf("length changed: %d -> %d", len(orig), len(after))
			}
			if after[to] != orig[from] {
				t.Errorf("Reorder(%d->%d): moved element at %d is %s, want %s", from, to, to, after[to], orig[from])
			}
			// Multiset preserved.
			seen := map[string]bool{}
			for _, id := range after {
				if seen[id] {
					t.Fatalf("duplicate id after reorder: %s", id)
				}
				seen[id] = true
			}
			for _, id := range orig {
				if !seen[id] {
					t.Fatalf("id lost in reorder: %s", id)
				}
			}
			// Relative order of the others preserved.
			var restBefore, restAfter []string
			for _, id := range orig {
				if id != orig[from] {
					restBefore = append(restBefore, id)
				}
			}
			for _, id := range after {
				if id != orig[from] {
					restAfter = append(restAfter, id)
				}
			}
			for i := range restBefore {
				if restBefore[i] != restAfter[i] {
					t.Fatalf("Reorder(%d->%d) disturbed relative order: %v vs %v", from, to, restBefore, restAfter)
				}
			}
		}
	}
}

func TestReorderIdempotence(t *testing.T) {
	s := newTestStore("a", "b", "c")
	before := ids(s.Items())
	if !s.Reorder(before[1], 1) {
		t.Fatal("move to own index should succeed as a no-op permutation")
	}
	after := ids(s.Items())
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("order changed by identity move: %v -> %v", before, after)
		}
	}
}

func TestReorderReturnsNewSlice(t *testing.T) {
	items := []domain.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	next, ok := Reorder(items, "a", 2)
	if !ok {
		t.Fatal("Reorder failed")
	}
	if &next[0] == &items[0] {
		t.Error("Reorder must return a fresh slice, not mutate in place")
	}
	if items[0].ID != "a" {
		t.Error("input slice was mutated")
	}
}

func TestReorderStaleEndpoints(t *testing.T) {
	s := newTestStore("a", "b")

	if s.Reorder("ghost", 0) {
		t.Error("unknown id should be a no-op")
	}
	if s.Reorder(s.Items()[0].ID, 5) {
		t.Error("out-of-range index should be a no-op")
	}
	if s.Reorder(s.Items()[0].ID, -1) {
		t.Error("negative index should be a no-op")
	}
}

func TestTitleAndCategory(t *testing.T) {
	s := newTestStore()
	if !s.UpdateTitle("  Weekend  ") {
		t.Fatal("UpdateTitle returned false")
	}
	if s.Title() != "Weekend" {
		t.Errorf("title = %q, want Weekend", s.Title())
	}
	if s.UpdateTitle("") {
		t.Error("empty title should be a no-op")
	}

	if !s.SetCategory("work") {
		t.Fatal("SetCategory returned false")
	}
	if s.SetCategory("work") {
		t.Error("setting the same category should be a no-op")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestStore("Milk")
	snap := s.Snapshot()
	s.UpdateText(s.Items()[0].ID, "Eggs")
	if snap.Items[0].Text != "Milk" {
		t.Error("snapshot shares backing array with store")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// add "Milk" to an empty list, toggle it, remove it.
	s := newTestStore()
	if got := domain.Progress(s.Items()); got != 0 {
		t.Fatalf("empty progress = %v, want 0", got)
	}

	item, ok := s.Add("Milk")
	if !ok {
		t.Fatal("Add failed")
	}
	if len(s.Items()) != 1 || s.Items()[0].Text != "Milk" || s.Items()[0].Completed {
		t.Fatalf("after add: %+v", s.Items())
	}
	if got := domain.Progress(s.Items()); got != 0 {
		t.Errorf("progress = %v, want 0", got)
	}

	s.ToggleComplete(item.ID)
	if got := domain.Progress(s.Items()); got != 100 {
		t.Errorf("progress = %v, want 100", got)
	}

	s.Remove(item.ID)
	if len(s.Items()) != 0 {
		t.Errorf("items = %v, want empty", s.Items())
	}
}
