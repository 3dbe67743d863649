package registry

import (
	"context"
	"errors"
	"testing"

	"ticklist/internal/domain"
	tlerrors "ticklist/internal/errors"
	"ticklist/internal/store"
)

func TestAddCategory(t *testing.T) {
	t.Run("VisibleImmediately", func(t *testing.T) {
		mock := store.NewMockClient()
		r := New(mock, nil)

		if err := r.AddCategory(context.Background(), "work"); err != nil {
			t.Fatalf("AddCategory: %v", err)
		}
		if !r.Has("work") {
			t.Error("category should be visible to readers immediately")
		}
		if mock.AddCategoryCallCount != 1 {
			t.Errorf("persist calls = %d, want 1", mock.AddCategoryCallCount)
		}
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		mock := store.NewMockClient()
		r := New(mock, nil)
		err := r.AddCategory(context.Background(), "   ")
		if !tlerrors.IsCode(err, tlerrors.CodeEmptyText) {
			t.Errorf("error = %v, want empty_text code", err)
		}
		if mock.AddCategoryCallCount != 0 {
			t.Error("rejected add must not reach persistence")
		}
	})

	t.Run("DuplicateIsNoOp", func(t *testing.T) {
		mock := store.NewMockClient()
		r := New(mock, []domain.Category{{Name: "home", Color: "#00ff00"}})
		if err := r.AddCategory(context.Background(), "home"); err != nil {
			t.Fatalf("AddCategory: %v", err)
		}
		if mock.AddCategoryCallCount != 0 {
			t.Error("duplicate add must not reach persistence")
		}
		if r.ColorFor("home") != "#00ff00" {
			t.Error("duplicate add must not clear the existing color")
		}
	})
}

func TestUpdateColor(t *testing.T) {
	mock := store.NewMockClient()
	r := New(mock, []domain.Category{{Name: "home", Color: "#00ff00"}})

	if err := r.UpdateColor(context.Background(), "home", "#0000ff"); err != nil {
		t.Fatalf("UpdateColor: %v", err)
	}
	if got := r.ColorFor("home"); got != "#0000ff" {
		t.Errorf("ColorFor = %q, want #0000ff", got)
	}
	if mock.UpdateCategoryColorCallCount != 1 {
		t.Errorf("persist calls = %d, want 1", mock.UpdateCategoryColorCallCount)
	}

	if err := r.UpdateColor(context.Background(), "ghost", "#fff"); !tlerrors.IsCode(err, tlerrors.CodeNotFound) {
		t.Errorf("unknown category error = %v, want not_found", err)
	}
}

func TestUpdateColorFailureThenRevert(t *testing.T) {
	mock := store.NewMockClient()
	mock.UpdateCategoryColorFn = func(context.Context, string, string) error {
		return errors.New("disk full")
	}
	r := New(mock, []domain.Category{{Name: "home", Color: "#00ff00"}})

	if err := r.UpdateColor(context.Background(), "home", "#0000ff"); err == nil {
		t.Fatal("expected persistence error")
	}
	// Caller rolls the shared view back to the confirmed color.
	r.Revert("home", "#00ff00")
	if got := r.ColorFor("home"); got != "#00ff00" {
		t.Errorf("ColorFor after revert = %q, want #00ff00", got)
	}
}

func TestSharedAcrossReaders(t *testing.T) {
	mock := store.NewMockClient()
	r := New(mock, nil)

	// Two lists hold the same injected reference; a write through one is
	// visible through the other.
	listA, listB := r, r
	if err := listA.AddCategory(context.Background(), "errands"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if !listB.Has("errands") {
		t.Error("second reader does not see the new category")
	}

	cats := r.Categories()
	if len(cats) != 1 || cats[0].Name != "errands" {
		t.Errorf("Categories = %v", cats)
	}
}
