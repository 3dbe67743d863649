package suggest

import (
	"strings"

	"ticklist/internal/debug"
)

// Engine tracks the draft text, the generation counter, and the cached
// candidate. It is not a Bubble Tea model; the UI drives it from its Update
// loop and turns BeginFetch results into commands.
//
// Correctness property: every fetch carries the generation current at issue
// time. The generation moves forward on every new fetch and on every draft
// change, so a response stamped with an old generation is discarded
// unconditionally — a slow, stale response can never clobber fresher state.
// In-flight calls are never aborted; cancellation is logical only.
type Engine struct {
	enabled bool

	draft      string
	generation int
	fetchGen   int // generation stamped on the most recent issued fetch
	loading    bool

	candidate string   // best candidate for the inline overlay
	ranked    []string // full ranked list for the panel
}

// NewEngine returns an engine with no draft and no pending fetch.
func NewEngine(enabled bool) *Engine {
	return &Engine{enabled: enabled}
}

// Enabled reports whether the feature is on.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetEnabled toggles the feature. Disabling hides the overlay but keeps
// state; re-enabling restores it under the visibility law.
func (e *Engine) SetEnabled(on bool) {
	e.enabled = on
}

// Draft returns the current draft text.
func (e *Engine) Draft() string {
	return e.draft
}

// SetDraft records a draft change. Any outstanding fetch is logically
// invalidated: the generation advances, so its response will be stale on
// arrival. The cached candidate is kept — the visibility law decides
// whether it still overlays the new draft.
func (e *Engine) SetDraft(text string) {
	if text == e.draft {
		return
	}
	e.draft = text
	e.generation++
}

// Loading reports whether the most recent fetch is still unresolved.
func (e *Engine) Loading() bool {
	return e.loading
}

// Generation returns the current generation, for stamping async work.
func (e *Engine) Generation() int {
	return e.generation
}

// BeginFetch registers a new fetch and returns the generation to stamp it
// with. It refuses (ok=false) when the feature is off, the draft is empty,
// or a fetch for the current generation is already outstanding — a fetch
// invalidated by a draft change no longer blocks a new one.
func (e *Engine) BeginFetch() (gen int, ok bool) {
	if !e.enabled || strings.TrimSpace(e.draft) == "" {
		return 0, false
	}
	if e.loading && e.fetchGen == e.generation {
		return 0, false
	}
	e.generation++
	e.fetchGen = e.generation
	e.loading = true
	return e.generation, true
}

// Resolve delivers a fetch result. The loading flag is released whenever
// the latest issued fetch resolves, matching or not; candidates are applied
// only when the stamped generation is still current.
func (e *Engine) Resolve(gen int, candidates []string) {
	if gen == e.fetchGen {
		e.loading = false
	}
	if gen != e.generation {
		debug.Logf("suggest: discarding stale result gen=%d current=%d", gen, e.generation)
		return
	}
	e.ranked = candidates
	if len(candidates) > 0 {
		e.candidate = candidates[0]
	} else {
		e.candidate = ""
	}
}

// Fail delivers a fetch error. Provider errors never propagate: the loading
// flag is released and, when the failure belongs to the current generation,
// the overlay is left empty.
func (e *Engine) Fail(gen int, err error) {
	if gen == e.fetchGen {
		e.loading = false
	}
	if gen != e.generation {
		return
	}
	debug.Logf("suggest: fetch failed: %v", err)
	e.candidate = ""
	e.ranked = nil
}

// Overlay returns the full candidate and whether the ghost text should be
// rendered: the candidate must case-insensitively extend a non-empty draft
// and the feature must be enabled.
func (e *Engine) Overlay() (string, bool) {
	if !e.enabled || e.draft == "" || e.candidate == "" {
		return "", false
	}
	if !strings.HasPrefix(strings.ToLower(e.candidate), strings.ToLower(e.draft)) {
		return "", false
	}
	return e.candidate, true
}

// Ghost returns the continuation portion rendered ahead of the caret, ""
// when the overlay is not visible.
func (e *Engine) Ghost() string {
	candidate, ok := e.Overlay()
	if !ok || len(candidate) <= len(e.draft) {
		return ""
	}
	return candidate[len(e.draft):]
}

// Ranked returns the full candidate list from the last applied fetch.
func (e *Engine) Ranked() []string {
	return e.ranked
}

// Alternatives returns the ranked candidates beyond the primary that still
// extend the current draft, under the same visibility law as the overlay.
func (e *Engine) Alternatives() []string {
	primary, ok := e.Overlay()
	if !ok {
		return nil
	}
	var out []string
	for _, c := range e.ranked {
		if c == primary {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(e.draft)) {
			out = append(out, c)
		}
	}
	return out
}

// Accept replaces the draft with the full candidate and clears the active
// suggestion. Returns ok=false when no overlay is visible.
func (e *Engine) Accept() (string, bool) {
	candidate, ok := e.Overlay()
	if !ok {
		return "", false
	}
	e.draft = candidate
	e.generation++
	e.candidate = ""
	e.ranked = nil
	return candidate, true
}

// Clear wipes the draft text entirely (the Escape path) along with any
// cached suggestion.
func (e *Engine) Clear() {
	e.draft = ""
	e.generation++
	e.candidate = ""
	e.ranked = nil
}

// Reset discards the draft and suggestion after a commit; the caller has
// already consumed the draft.
func (e *Engine) Reset() {
	e.Clear()
}
