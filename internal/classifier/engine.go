// Package classifier is the Classifier Engine component: it sequences the
// keyword, RAG and LLM tiers against a dish name, short-circuiting as soon as
// a tier is decisive, and otherwise blending every tier's opinion into one
// final verdict.
package classifier

import (
	"context"
	"fmt"

	"veggiemenu/internal/embedding"
	"veggiemenu/internal/keyword"
	"veggiemenu/internal/llm"
	"veggiemenu/internal/models"
	"veggiemenu/internal/vectorstore"
	"veggiemenu/pkg/logging"
)

// Config tunes the thresholds the engine uses to decide when a tier's
// opinion is decisive enough to short-circuit the remaining tiers.
type Config struct {
	ConfidenceThreshold float64
	RAGTopK             int
	RAGRelevanceFloor   float64
	Currency            string
	LLMBatchSize        int
}

// keywordDecisiveFloor mirrors the keyword tier's own decisiveConfidence;
// any keyword match is treated as final.
const keywordDecisiveFloor = 0.9

// Engine wires together the three tiers plus the knowledge base's embedding
// and vector search.
type Engine struct {
	keyword   *keyword.Matcher
	store     *vectorstore.Store
	embedder  *embedding.Service
	llmClient *llm.Client
	cfg       Config
	log       *logging.ComponentLogger
}

// New builds a classifier Engine from its already-constructed tiers.
func New(matcher *keyword.Matcher, store *vectorstore.Store, embedder *embedding.Service, llmClient *llm.Client, cfg Config, log *logging.Logger) *Engine {
	return &Engine{
		keyword:   matcher,
		store:     store,
		embedder:  embedder,
		llmClient: llmClient,
		cfg:       cfg,
		log:       log.WithComponent("classifier_engine"),
	}
}

// Classify runs the full tiered cascade for one dish name: keyword, then RAG,
// then LLM, short-circuiting as soon as a tier clears its decisive threshold.
// When no tier is individually decisive the three opinions are blended by
// combine(). The fallback chain records every tier consulted, in
// "method:confidence" shorthand.
func (e *Engine) Classify(ctx context.Context, dishName string) (models.ClassifiedItem, error) {
	var chain []string

	keywordResult := e.keyword.Classify(dishName)
	chain = append(chain, step(keywordResult))
	if !keywordResult.Abstains() && keywordResult.Confidence >= keywordDecisiveFloor {
		return e.finalize(dishName, keywordResult, nil, chain), nil
	}

	ragResult, evidence, err := e.classifyRAG(ctx, dishName)
	if err != nil {
		e.log.Error("rag evidence retrieval failed", err, logging.String("dish_name", dishName))
		ragResult = models.TierResult{IsVegetarian: nil, Confidence: 0, Reasoning: "RAG unavailable", Method: "rag"}
	}
	chain = append(chain, step(ragResult))
	if !ragResult.Abstains() && ragResult.Confidence >= e.cfg.ConfidenceThreshold {
		return e.finalize(dishName, ragResult, evidence, chain), nil
	}

	llmResult := e.llmClient.Classify(ctx, dishName, evidence)
	if llmResult.LLMError != "" {
		chain = append(chain, "fallback_to_rag")
		return e.finalize(dishName, fallbackResult(ragResult, llmResult), evidence, chain), nil
	}
	chain = append(chain, step(llmResult))

	combined := combine(keywordResult, ragResult, llmResult)
	return e.finalize(dishName, combined, evidence, chain), nil
}

// ClassifyBatch classifies many dishes. Whichever dishes reach the LLM tier
// are grouped into chunks of at most LLMBatchSize and sent one chunk per
// Client.ClassifyBatch call, instead of one call per dish.
func (e *Engine) ClassifyBatch(ctx context.Context, names []string) ([]models.ClassifiedItem, error) {
	items := make([]models.ClassifiedItem, len(names))
	chains := make([][]string, len(names))
	keywordResults := make([]models.TierResult, len(names))
	ragResults := make([]models.TierResult, len(names))
	evidences := make([][]models.RAGHit, len(names))
	pending := make([]int, 0, len(names))

	for i, name := range names {
		kr := e.keyword.Classify(name)
		keywordResults[i] = kr
		chains[i] = append(chains[i], step(kr))
		if !kr.Abstains() && kr.Confidence >= keywordDecisiveFloor {
			items[i] = e.finalize(name, kr, nil, chains[i])
			continue
		}

		rr, evidence, err := e.classifyRAG(ctx, name)
		if err != nil {
			rr = models.TierResult{IsVegetarian: nil, Confidence: 0, Reasoning: "RAG unavailable", Method: "rag"}
		}
		ragResults[i] = rr
		evidences[i] = evidence
		chains[i] = append(chains[i], step(rr))
		if !rr.Abstains() && rr.Confidence >= e.cfg.ConfidenceThreshold {
			items[i] = e.finalize(name, rr, evidence, chains[i])
			continue
		}

		pending = append(pending, i)
	}

	if len(pending) > 0 {
		for _, batch := range chunkInts(pending, e.cfg.LLMBatchSize) {
			pendingNames := make([]string, len(batch))
			for j, i := range batch {
				pendingNames[j] = names[i]
			}
			llmResults := e.llmClient.ClassifyBatch(ctx, pendingNames)

			for _, i := range batch {
				llmResult := llmResults[names[i]]
				if llmResult.LLMError != "" {
					chains[i] = append(chains[i], "fallback_to_rag")
					items[i] = e.finalize(names[i], fallbackResult(ragResults[i], llmResult), evidences[i], chains[i])
					continue
				}
				chains[i] = append(chains[i], step(llmResult))
				combined := combine(keywordResults[i], ragResults[i], llmResult)
				items[i] = e.finalize(names[i], combined, evidences[i], chains[i])
			}
		}

		embedding.ClearCache()
	}

	return items, nil
}

// chunkInts splits indices into groups of size, preserving order. A
// non-positive size is treated as "everything in one batch," matching the
// behavior before batching was bounded.
func chunkInts(indices []int, size int) [][]int {
	if size <= 0 || size >= len(indices) {
		return [][]int{indices}
	}
	batches := make([][]int, 0, (len(indices)+size-1)/size)
	for start := 0; start < len(indices); start += size {
		end := start + size
		if end > len(indices) {
			end = len(indices)
		}
		batches = append(batches, indices[start:end])
	}
	return batches
}

// classifyRAG embeds the dish name, searches the vector store for the
// nearest knowledge base entries and scores the resulting evidence.
func (e *Engine) classifyRAG(ctx context.Context, dishName string) (models.TierResult, []models.RAGHit, error) {
	vec, err := e.embedder.Embed(ctx, dishName)
	if err != nil {
		return models.TierResult{}, nil, err
	}
	hits, err := e.store.Search(ctx, vec, e.cfg.RAGTopK)
	if err != nil {
		return models.TierResult{}, nil, err
	}
	return analyzeRAGEvidence(hits, e.cfg.RAGRelevanceFloor), hits, nil
}

// fallbackResult is used when the LLM tier errors out: the RAG opinion
// stands in for the combined verdict, and its method is relabeled so callers
// can tell a fallback happened.
func fallbackResult(ragResult, llmResult models.TierResult) models.TierResult {
	if ragResult.Abstains() {
		return models.TierResult{
			IsVegetarian: nil,
			Confidence:   0,
			Reasoning:    "Unable to classify: " + llmResult.LLMError,
			Method:       "fallback",
		}
	}
	return models.TierResult{
		IsVegetarian: ragResult.IsVegetarian,
		Confidence:   ragResult.Confidence,
		Reasoning:    ragResult.Reasoning,
		Method:       "fallback",
	}
}

// finalize builds the ClassifiedItem the API and review layers work with,
// attaching up to the three most relevant evidence documents plus the
// ingredient-type hits and category carried over from the knowledge base.
func (e *Engine) finalize(dishName string, result models.TierResult, evidence []models.RAGHit, chain []string) models.ClassifiedItem {
	item := models.ClassifiedItem{
		MenuItem:      models.MenuItem{Name: dishName},
		IsVegetarian:  result.IsVegetarian,
		Confidence:    result.Confidence,
		Reasoning:     result.Reasoning,
		Method:        result.Method,
		FallbackChain: chain,
		Currency:      e.cfg.Currency,
	}
	if len(evidence) > 3 {
		evidence = evidence[:3]
	}
	for _, hit := range evidence {
		item.Evidence = append(item.Evidence, hit.Document)
		if hitType, _ := hit.Metadata["type"].(string); hitType == "ingredient" && len(item.RelatedIngredients) < 3 {
			if name, ok := hit.Metadata["name"].(string); ok {
				item.RelatedIngredients = append(item.RelatedIngredients, name)
			}
		}
		if item.Category == "" {
			if category, ok := hit.Metadata["category"].(string); ok && category != "" {
				item.Category = category
			}
		}
	}
	return item
}

func step(result models.TierResult) string {
	return fmt.Sprintf("%s:%.2f", result.Method, result.Confidence)
}
