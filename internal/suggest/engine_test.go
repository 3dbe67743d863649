package suggest

import (
	"errors"
	"testing"
)

func TestGenerationGuard(t *testing.T) {
	t.Run("StaleResultDiscarded", func(t *testing.T) {
		e := NewEngine(true)
		e.SetDraft("Buy")

		genA, ok := e.BeginFetch()
		if !ok {
			t.Fatal("first fetch refused")
		}

		// Typing invalidates fetch A, so fetch B may start while A is
		// still in flight.
		e.SetDraft("Buy m")
		genB, ok := e.BeginFetch()
		if !ok {
			t.Fatal("fetch after a draft change refused")
		}
		if genB <= genA {
			t.Fatalf("generations must be monotonic: A=%d B=%d", genA, genB)
		}

		// B resolves first, then A straggles in.
		e.Resolve(genB, []string{"Buy milk"})
		e.Resolve(genA, []string{"Buy bread"})

		candidate, visible := e.Overlay()
		if !visible || candidate != "Buy milk" {
			t.Errorf("overlay = %q visible=%v, want the newer fetch's candidate", candidate, visible)
		}
		if e.Loading() {
			t.Error("loading must be clear after the latest fetch resolved")
		}
	})

	t.Run("DuplicateFetchSuppressed", func(t *testing.T) {
		e := NewEngine(true)
		e.SetDraft("Buy")
		if _, ok := e.BeginFetch(); !ok {
			t.Fatal("first fetch refused")
		}
		if _, ok := e.BeginFetch(); ok {
			t.Error("second fetch for the same draft must be suppressed while loading")
		}
	})

	t.Run("DraftChangeAfterResolveHidesStaleOverlay", func(t *testing.T) {
		e := NewEngine(true)
		e.SetDraft("Buy m")
		gen, _ := e.BeginFetch()
		e.Resolve(gen, []string{"Buy milk"})

		// Draft diverges from the candidate's prefix.
		e.SetDraft("Call")
		if _, visible := e.Overlay(); visible {
			t.Error("overlay must hide when the draft is no longer a prefix")
		}

		// Typing back into the candidate restores it.
		e.SetDraft("buy mi")
		if candidate, visible := e.Overlay(); !visible || candidate != "Buy milk" {
			t.Errorf("overlay = %q visible=%v, want cached candidate back", candidate, visible)
		}
	})
}

func TestOverlayLaw(t *testing.T) {
	cases := []struct {
		name      string
		enabled   bool
		draft     string
		candidate string
		visible   bool
		ghost     string
	}{
		{"PrefixExtension", true, "Buy mi", "Buy milk", true, "lk"},
		{"CaseInsensitive", true, "buy MI", "Buy milk", true, "lk"},
		{"NotAPrefix", true, "Call", "Buy milk", false, ""},
		{"EmptyDraft", true, "", "Buy milk", false, ""},
		{"Disabled", false, "Buy mi", "Buy milk", false, ""},
		{"ExactMatch", true, "Buy milk", "Buy milk", true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine(true)
			e.SetDraft(tc.draft)
			gen, ok := e.BeginFetch()
			if ok {
				e.Resolve(gen, []string{tc.candidate})
			} else {
				// Empty drafts never fetch; seed the cache through a
				// draft that does, then switch.
				e.SetDraft("seed")
				gen, _ = e.BeginFetch()
				e.Resolve(gen, []string{tc.candidate})
				e.SetDraft(tc.draft)
			}
			e.SetEnabled(tc.enabled)

			_, visible := e.Overlay()
			if visible != tc.visible {
				t.Errorf("visible = %v, want %v", visible, tc.visible)
			}
			if got := e.Ghost(); got != tc.ghost {
				t.Errorf("Ghost = %q, want %q", got, tc.ghost)
			}
		})
	}
}

func TestFetchRefusedWhenDisabledOrEmpty(t *testing.T) {
	e := NewEngine(false)
	e.SetDraft("Buy")
	if _, ok := e.BeginFetch(); ok {
		t.Error("disabled engine must not fetch")
	}

	e = NewEngine(true)
	e.SetDraft("   ")
	if _, ok := e.BeginFetch(); ok {
		t.Error("whitespace draft must not fetch")
	}
}

func TestFailReleasesLoading(t *testing.T) {
	e := NewEngine(true)
	e.SetDraft("Buy mi")
	gen, _ := e.BeginFetch()
	e.Fail(gen, errors.New("quota exceeded"))

	if e.Loading() {
		t.Error("loading must release on provider failure")
	}
	if _, visible := e.Overlay(); visible {
		t.Error("failed fetch must leave the overlay empty")
	}

	// The editor stays usable: the next fetch is not blocked.
	if _, ok := e.BeginFetch(); !ok {
		t.Error("fetch after a failure refused")
	}
}

func TestAcceptReplacesDraft(t *testing.T) {
	e := NewEngine(true)
	e.SetDraft("Buy mi")
	gen, _ := e.BeginFetch()
	e.Resolve(gen, []string{"Buy milk"})

	text, ok := e.Accept()
	if !ok || text != "Buy milk" {
		t.Fatalf("Accept = %q ok=%v", text, ok)
	}
	if e.Draft() != "Buy milk" {
		t.Errorf("Draft = %q, want the accepted candidate", e.Draft())
	}
	if _, visible := e.Overlay(); visible {
		t.Error("accepted suggestion must be cleared")
	}

	if _, ok := e.Accept(); ok {
		t.Error("second accept with no overlay must refuse")
	}
}

func TestClearWipesDraftAndSuggestion(t *testing.T) {
	e := NewEngine(true)
	e.SetDraft("Buy mi")
	gen, _ := e.BeginFetch()
	e.Resolve(gen, []string{"Buy milk"})

	e.Clear()
	if e.Draft() != "" {
		t.Errorf("Draft = %q, want empty", e.Draft())
	}
	if len(e.Ranked()) != 0 {
		t.Error("Ranked must be empty after Clear")
	}

	// A straggler from before the clear is stale.
	e.Resolve(gen, []string{"Buy bread"})
	if _, visible := e.Overlay(); visible {
		t.Error("stale result must not repopulate a cleared draft")
	}
}

func TestAlternativesFollowOverlayLaw(t *testing.T) {
	e := NewEngine(true)
	e.SetDraft("Buy")
	gen, _ := e.BeginFetch()
	e.Resolve(gen, []string{"Buy milk", "Buy mints", "Take out trash"})

	if got := e.Alternatives(); len(got) != 1 || got[0] != "Buy mints" {
		t.Fatalf("Alternatives = %v, want the non-primary prefix matches", got)
	}

	// Narrowing the draft past the alternative drops it but keeps the primary.
	e.SetDraft("Buy mil")
	if got := e.Alternatives(); len(got) != 0 {
		t.Errorf("Alternatives = %v, want none for a narrowed draft", got)
	}
	if candidate, visible := e.Overlay(); !visible || candidate != "Buy milk" {
		t.Errorf("overlay = %q visible=%v, want the primary intact", candidate, visible)
	}

	// No overlay, no alternatives.
	e.SetDraft("Call")
	if got := e.Alternatives(); got != nil {
		t.Errorf("Alternatives = %v, want nil when the overlay is hidden", got)
	}
}

func TestEmptyResultClearsCandidate(t *testing.T) {
	e := NewEngine(true)
	e.SetDraft("Buy mi")
	gen, _ := e.BeginFetch()
	e.Resolve(gen, []string{"Buy milk"})

	e.SetDraft("Buy mil")
	gen, _ = e.BeginFetch()
	e.Resolve(gen, nil)
	if _, visible := e.Overlay(); visible {
		t.Error("an empty current-generation result must clear the overlay")
	}
}
