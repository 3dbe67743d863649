// Package suggest implements race-safe autocomplete for the add-item draft
// text: a provider abstraction over the AI backend and an engine that keeps
// interleaved fetches, keystrokes, and slow responses from clobbering each
// other.
package suggest

import (
	"context"
	"sync"
)

// Context describes the list state a fetch is ranked against.
type Context struct {
	ListTitle  string
	Category   string
	Items      []string // existing item texts, in order
	Draft      string   // the prefix being completed
	MaxResults int      // 1 for the inline overlay, more for the panel
}

// Provider returns ranked candidate completions for a draft. The ranking
// algorithm is the provider's business; the engine only consumes the order.
type Provider interface {
	FetchSuggestions(ctx context.Context, sctx Context) ([]string, error)
}

// MockProvider is a test double for Provider.
type MockProvider struct {
	FetchFn func(context.Context, Context) ([]string, error)

	mu            sync.Mutex
	FetchCalls    int
	FetchContexts []Context
}

// FetchSuggestions invokes the configured stub or returns no candidates.
func (m *MockProvider) FetchSuggestions(ctx context.Context, sctx Context) ([]string, error) {
	m.mu.Lock()
	m.FetchCalls++
	m.FetchContexts = append(m.FetchContexts, sctx)
	m.mu.Unlock()

	if m.FetchFn == nil {
		return nil, nil
	}
	return m.FetchFn(ctx, sctx)
}
