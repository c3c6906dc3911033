// Package llm provides the LLM Client component: a pluggable provider
// abstraction (local Ollama via langchaingo, remote OpenAI via go-openai),
// selection policy, prompt templates, and response parsing for both the
// single-dish and batch classification tiers.
package llm

import (
	"context"

	"veggiemenu/pkg/errors"
	"veggiemenu/pkg/logging"
)

var errNoProvider = errors.NewExternal("llm.Select", "llm", "no llm provider available; ensure ollama is running or OPENAI_API_KEY is set", nil)
var errEmptyResponse = errors.NewExternal("llm.Generate", "llm", "provider returned no choices", nil)

// Provider is anything that can turn a system+user prompt pair into a
// completion and report whether it is currently reachable.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	IsAvailable(ctx context.Context) bool
}

// SelectConfig carries what Select needs to construct both candidate
// providers and decide between them.
type SelectConfig struct {
	Preferred     string // "ollama" or "openai"
	OllamaBaseURL string
	OllamaModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout int // seconds
	Logger        *logging.Logger
}

// Select implements the provider selection policy: if the preferred
// provider is Ollama, probe it and use it if reachable; otherwise warn and
// fall through to OpenAI if an API key is configured; otherwise retry
// Ollama as a last resort; otherwise fail.
func Select(ctx context.Context, cfg SelectConfig) (Provider, error) {
	log := cfg.Logger.WithComponent("llm_select")
	ollama := NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel)
	openai := NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout, cfg.Logger)

	if cfg.Preferred == "ollama" {
		if ollama.IsAvailable(ctx) {
			log.Info("using ollama llm provider")
			return ollama, nil
		}
		log.Warn("ollama not available, trying openai fallback")
	}

	if openai.IsAvailable(ctx) {
		log.Info("using openai llm provider")
		return openai, nil
	}

	if ollama.IsAvailable(ctx) {
		log.Info("using ollama llm provider (fallback)")
		return ollama, nil
	}

	return nil, errNoProvider
}
