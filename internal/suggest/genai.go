package suggest

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	tlerrors "ticklist/internal/errors"
)

// GenAIProvider ranks completions with Google's Gemini API. Responses are
// parsed as one candidate per line; the model is asked to extend the draft
// in place rather than rewrite it.
type GenAIProvider struct {
	client *genai.Client
	model  string
}

// NewGenAIProvider creates a Gemini-backed provider.
func NewGenAIProvider(ctx context.Context, apiKey, model string) (*GenAIProvider, error) {
	if apiKey == "" {
		return nil, tlerrors.New(tlerrors.CodeConfigurationError, "suggestion API key is required", nil)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, tlerrors.New(tlerrors.CodeProviderFailed, "failed to create GenAI client", err)
	}

	return &GenAIProvider{client: client, model: model}, nil
}

// FetchSuggestions asks the model for ranked completions of the draft.
func (p *GenAIProvider) FetchSuggestions(ctx context.Context, sctx Context) ([]string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(sctx), genai.RoleUser),
	}

	result, err := p.client.Models.GenerateContent(ctx,
		p.model,
		contents,
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.2),
			MaxOutputTokens: 256,
		},
	)
	if err != nil {
		return nil, tlerrors.New(tlerrors.CodeProviderFailed, "GenAI completion failed", err)
	}

	max := sctx.MaxResults
	if max <= 0 {
		max = 1
	}
	return parseCandidates(result.Text(), max), nil
}

// Close releases the underlying client. The genai client holds no
// long-lived resources and exposes no Close method.
func (p *GenAIProvider) Close() error {
	return nil
}

func buildPrompt(sctx Context) string {
	var b strings.Builder
	b.WriteString("You complete items being typed into a checklist.\n")
	fmt.Fprintf(&b, "List title: %s\n", sctx.ListTitle)
	if sctx.Category != "" {
		fmt.Fprintf(&b, "List category: %s\n", sctx.Category)
	}
	if len(sctx.Items) > 0 {
		b.WriteString("Existing items:\n")
		for _, item := range sctx.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	fmt.Fprintf(&b, "\nThe user has typed: %q\n", sctx.Draft)
	max := sctx.MaxResults
	if max <= 0 {
		max = 1
	}
	fmt.Fprintf(&b, "Reply with up to %d completed item texts, best first, one per line, no numbering or bullets. ", max)
	b.WriteString("Each line must start with exactly what the user typed. Do not repeat existing items.")
	return b.String()
}

// parseCandidates splits a model reply into candidate lines, stripping any
// bullet or numbering the model added despite instructions.
func parseCandidates(reply string, max int) []string {
	var out []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		for i := 1; i <= 9; i++ {
			line = strings.TrimPrefix(line, fmt.Sprintf("%d. ", i))
		}
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}
