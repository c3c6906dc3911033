package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider talks to a local Ollama server through langchaingo.
type OllamaProvider struct {
	baseURL string
	model   *ollama.LLM
}

// NewOllamaProvider constructs an Ollama-backed provider. It never returns an
// error: if langchaingo rejects the configuration the provider keeps a nil
// model, and a down server is reported through IsAvailable.
func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	model, err := ollama.New(ollama.WithServerURL(baseURL), ollama.WithModel(modelName))
	if err != nil {
		// Keep a nil model; IsAvailable and Generate will report failure
		// rather than panicking at startup.
		return &OllamaProvider{baseURL: baseURL}
	}
	return &OllamaProvider{baseURL: baseURL, model: model}
}

func (p *OllamaProvider) Name() string { return "ollama" }

// Generate sends a system+user message pair and returns the model's reply.
func (p *OllamaProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.model == nil {
		return "", errNoProvider
	}
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}
	resp, err := p.model.GenerateContent(ctx, messages, llms.WithTemperature(0.1))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyResponse
	}
	return resp.Choices[0].Content, nil
}

// IsAvailable probes the server's model-listing endpoint directly, the same
// lightweight health check the reference provider uses, rather than paying
// for a full generation round-trip.
func (p *OllamaProvider) IsAvailable(ctx context.Context) bool {
	if p.model == nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
