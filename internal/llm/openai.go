package llm

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"

	"veggiemenu/pkg/circuit"
	"veggiemenu/pkg/logging"
)

// OpenAIProvider talks to the OpenAI chat completions API, guarded by a
// circuit breaker so a degraded API doesn't stall every classification
// request behind it.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	apiKey  string
	timeout time.Duration
	cb      *circuit.Breaker
}

// NewOpenAIProvider constructs a remote provider. An empty apiKey is valid;
// IsAvailable will simply report false.
func NewOpenAIProvider(apiKey, model string, timeoutSeconds int, log *logging.Logger) *OpenAIProvider {
	cb := circuit.New(circuit.Config{
		Name:              "openai",
		OperationTimeout:  time.Duration(timeoutSeconds) * time.Second,
		OpenFor:           45 * time.Second,
		MaxConsecFailures: 2,
		WindowSize:        10,
		FailureRate:       0.5,
		SlowCallThreshold: 20 * time.Second,
		SlowCallRate:      0.5,
	}, log)

	return &OpenAIProvider{
		client:  openai.NewClient(apiKey),
		model:   model,
		apiKey:  apiKey,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		cb:      cb,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

// Generate issues a chat completion request through the circuit breaker.
func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var content string
	err := p.cb.Do(ctx, func(ctx context.Context) error {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: 0.1,
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return errEmptyResponse
		}
		content = resp.Choices[0].Message.Content
		return nil
	}, nil)
	if err != nil {
		return "", err
	}
	return content, nil
}

// IsAvailable reports whether a usable API key is configured; a shallow
// length check rather than spending a real request on a liveness probe.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	return len(p.apiKey) > 10
}
