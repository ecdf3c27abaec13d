package llm

import "context"

// Provider defines a generic LLM interface. The system prompt may be
// empty; providers that have no native system slot prepend it to the user
// prompt.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
}
