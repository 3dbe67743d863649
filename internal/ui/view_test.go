package ui

import (
	"strings"
	"testing"

	"ticklist/internal/domain"
)

func TestHeaderShowsProgress(t *testing.T) {
	list := testListFixture("Eggs", "Milk", "Bread", "Butter")
	list.Items[0].Completed = true
	app, _ := newTestApp(t, list, nil)

	header := stripANSI(app.renderHeader())
	if !strings.Contains(header, "Groceries") {
		t.Errorf("header missing title: %q", header)
	}
	if !strings.Contains(header, "1/4 · 25%") {
		t.Errorf("header missing progress: %q", header)
	}
}

func TestViewMarksCompletedAndSelected(t *testing.T) {
	list := testListFixture("Eggs", "Milk")
	list.Items[1].Completed = true
	app, _ := newTestApp(t, list, nil)

	body := stripANSI(app.renderItems())
	if !strings.Contains(body, "☐ Eggs") {
		t.Errorf("open item missing checkbox:\n%s", body)
	}
	if !strings.Contains(body, "☑ Milk") {
		t.Errorf("completed item missing checkmark:\n%s", body)
	}
	if !strings.Contains(body, "▸") {
		t.Errorf("selected row missing cursor:\n%s", body)
	}
}

func TestEmptyListHint(t *testing.T) {
	app, _ := newTestApp(t, testListFixture(), nil)
	body := stripANSI(app.renderItems())
	if !strings.Contains(body, "Press a to add") {
		t.Errorf("empty list hint missing:\n%s", body)
	}
}

func TestListMarkdown(t *testing.T) {
	list := testListFixture("Eggs", "Milk")
	list.Items[0].Completed = true
	list.Category = "errands"
	app, _ := newTestApp(t, list, nil)

	md := app.listMarkdown()
	for _, want := range []string{"# Groceries", "_errands_", "- [x] Eggs", "- [ ] Milk"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestDisplayColorChain(t *testing.T) {
	list := testListFixture("Eggs")
	list.Category = "errands" // registry color #00ff00 from the fixture
	app, _ := newTestApp(t, list, nil)

	if got := app.displayColor(); got != "#00ff00" {
		t.Errorf("displayColor = %q, want the category default", got)
	}

	app.color.Preview("#7aa2f7")
	if got := app.displayColor(); got != "#7aa2f7" {
		t.Errorf("displayColor = %q, explicit preview must win", got)
	}

	app.color.Rollback("#7aa2f7")
	if got := app.displayColor(); got != "#00ff00" {
		t.Errorf("displayColor = %q after rollback", got)
	}

	bare, _ := newTestApp(t, testListFixture("Eggs"), nil)
	if got := bare.displayColor(); got != domain.FallbackColor {
		t.Errorf("displayColor = %q, want fallback grey", got)
	}
}

func TestToastRendering(t *testing.T) {
	app, _ := newTestApp(t, testListFixture("Eggs"), nil)
	if app.renderToast() != "" {
		t.Fatal("no toast expected initially")
	}
	app.showToast("Save failed: disk full", true)
	toast := stripANSI(app.renderToast())
	if !strings.Contains(toast, "Save failed") {
		t.Errorf("toast content missing:\n%s", toast)
	}
}

func TestViewComposesOverlay(t *testing.T) {
	app, _ := newTestApp(t, testListFixture("Eggs"), nil)
	app.mode = modeHelp

	view := stripANSI(app.View())
	if !strings.Contains(view, "TICKLIST HELP") {
		t.Errorf("help overlay missing from composed frame:\n%s", view)
	}
}
