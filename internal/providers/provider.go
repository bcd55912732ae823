package providers

import (
	"context"
	"fmt"
)

// Request contains the data sent to an LLM for analysis.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Response contains the raw response from an LLM.
type Response struct {
	Content    string
	TokensUsed int
}

// Analyzer is the provider abstraction interface.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (Response, error)
	Name() string
}

// DefaultModel returns the default model for a provider name.
func DefaultModel(provider string) string {
	switch provider {
	case "anthropic":
		return "claude-3-5-haiku-20241022"
	case "openai":
		return "gpt-4o-mini"
	case "gemini", "google":
		return "gemini-2.0-flash"
	case "ollama", "lmstudio":
		return "llama3.1"
	default:
		return ""
	}
}

// New creates a provider by name. An empty model selects the provider's
// default.
func New(provider, model string) (Analyzer, error) {
	if model == "" {
		model = DefaultModel(provider)
	}
	switch provider {
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "gemini", "google":
		return NewGemini(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
