package llm

import (
	"context"

	"veggiemenu/internal/models"
	"veggiemenu/pkg/logging"
)

// Client is the LLM tier of the classifier: one active Provider plus the
// prompt/parse machinery for both single-dish and batched requests.
type Client struct {
	provider Provider
	log      *logging.ComponentLogger
}

// NewClient wraps an already-selected Provider.
func NewClient(provider Provider, log *logging.Logger) *Client {
	return &Client{provider: provider, log: log.WithComponent("llm_client")}
}

// ProviderName reports which backend is currently active; main logs it at
// startup.
func (c *Client) ProviderName() string { return c.provider.Name() }

// Generate is a raw passthrough to the active provider, with no system
// prompt or response parsing applied. Used by the out-of-scope OCR line
// parser via the /parse-assist endpoint.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.provider.Generate(ctx, "", prompt)
}

// Classify asks the LLM to classify a single dish, given up to five pieces
// of retrieved evidence for context. A transport failure is captured in the
// returned TierResult (LLMError set, IsVegetarian nil) rather than
// propagated, so the classifier engine can fall back. A reply that cannot be
// parsed abstains with zero confidence and leaves LLMError empty.
func (c *Client) Classify(ctx context.Context, dishName string, evidence []models.RAGHit) models.TierResult {
	prompt := singlePrompt(dishName, evidence)

	response, err := c.provider.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		c.log.Error("llm classification failed", err, logging.String("dish_name", dishName), logging.String("provider", c.provider.Name()))
		return models.TierResult{
			IsVegetarian: nil,
			Confidence:   0,
			Reasoning:    "LLM error: " + err.Error(),
			Method:       "llm",
			LLMError:     err.Error(),
		}
	}

	return parseSingleResponse(response)
}

// ClassifyBatch classifies many dishes in one LLM call. On a transport
// failure every item gets a uniform error result; on success each item is
// matched back to its TierResult by parseBatchResponse.
func (c *Client) ClassifyBatch(ctx context.Context, names []string) map[string]models.TierResult {
	if len(names) == 0 {
		return map[string]models.TierResult{}
	}

	response, err := c.provider.Generate(ctx, batchSystemPrompt, batchPrompt(names))
	if err != nil {
		c.log.Error("batch llm classification failed", err, logging.Int("batch_size", len(names)))
		results := make(map[string]models.TierResult, len(names))
		for _, name := range names {
			results[name] = models.TierResult{
				IsVegetarian: nil,
				Confidence:   0,
				Reasoning:    "Batch LLM error: " + err.Error(),
				Method:       "llm_batch",
				LLMError:     err.Error(),
			}
		}
		return results
	}

	return parseBatchResponse(response, names)
}
