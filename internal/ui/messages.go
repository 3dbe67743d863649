package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// saveDoneMsg reports the outcome of a fire-and-forget list snapshot save.
type saveDoneMsg struct {
	err error
}

// colorSaveDoneMsg reports a color persist. The saved value rides along so a
// late failure can be matched against the preview it belongs to.
type colorSaveDoneMsg struct {
	saved string
	err   error
}

// categorySaveDoneMsg reports a category registration or color change.
type categorySaveDoneMsg struct {
	name string
	err  error
}

// suggestionResultMsg carries a provider response stamped with the
// generation its fetch was issued under.
type suggestionResultMsg struct {
	gen        int
	candidates []string
	err        error
}

// debounceMsg fires after the typing debounce window. gen is the engine
// generation at schedule time; a mismatch on arrival means more typing
// happened and the fetch should not trigger.
type debounceMsg struct {
	gen int
}

func scheduleDebounce(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// yankDoneMsg reports a clipboard copy.
type yankDoneMsg struct {
	err error
}
