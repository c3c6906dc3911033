// Package menutool is the Classifier Tool component: per-request
// orchestration of the classifier engine over a list of menu items,
// bucketed by confidence into confident-vegetarian, confident-non-vegetarian
// and uncertain.
package menutool

import (
	"context"

	"veggiemenu/internal/classifier"
	"veggiemenu/internal/embedding"
	"veggiemenu/internal/models"
	"veggiemenu/pkg/logging"
)

// Config tunes which orchestration strategy is used and the HITL cutoff
// buckets are evaluated against.
type Config struct {
	HITLThreshold float64
	BatchEnabled  bool
	LLMBatchSize  int
}

// Result is the outcome of classifying one request's items: the three
// disjoint buckets plus the full ordered item list with provenance.
type Result struct {
	AllItems            []models.ClassifiedItem
	ConfidentVegetarian []models.ClassifiedItem
	ConfidentNonVeg     []models.ClassifiedItem
	Uncertain           []models.ClassifiedItem
}

// Tool wraps a classifier Engine with the per-request orchestration policy.
type Tool struct {
	engine *classifier.Engine
	cfg    Config
	log    *logging.ComponentLogger
}

// New builds a Classifier Tool around an already-constructed engine.
func New(engine *classifier.Engine, cfg Config, log *logging.Logger) *Tool {
	return &Tool{engine: engine, cfg: cfg, log: log.WithComponent("menutool")}
}

// Classify runs either the sequential or batch strategy depending on
// configuration, buckets the resulting items preserving input order, and
// releases embedder scratch memory once done.
func (t *Tool) Classify(ctx context.Context, items []models.MenuItem) (Result, error) {
	defer embedding.ClearCache()

	var classified []models.ClassifiedItem
	var err error
	if t.cfg.BatchEnabled {
		classified, err = t.runBatch(ctx, items)
	} else {
		classified, err = t.runSequential(ctx, items)
	}
	if err != nil {
		return Result{}, err
	}

	return bucket(classified, t.cfg.HITLThreshold), nil
}

// runSequential calls classify_single for each item, in order: the simplest
// strategy and the fallback when batching is disabled.
func (t *Tool) runSequential(ctx context.Context, items []models.MenuItem) ([]models.ClassifiedItem, error) {
	out := make([]models.ClassifiedItem, len(items))
	for i, item := range items {
		classifiedItem, err := t.engine.Classify(ctx, item.Name)
		if err != nil {
			return nil, err
		}
		classifiedItem.MenuItem = item
		out[i] = classifiedItem
	}
	return out, nil
}

// runBatch delegates to the engine's own two-pass batch classification:
// keyword and RAG are tried per item first, and whatever remains undecided
// is packaged into LLM batches. Engine.ClassifyBatch already writes results
// positionally, so the order guarantee holds without further coordination
// here.
func (t *Tool) runBatch(ctx context.Context, items []models.MenuItem) ([]models.ClassifiedItem, error) {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	t.log.Debug("running batch classification", logging.Int("item_count", len(names)), logging.Int("llm_batch_size", t.cfg.LLMBatchSize))
	classified, err := t.engine.ClassifyBatch(ctx, names)
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		classified[i].MenuItem = item
	}
	return classified, nil
}

// bucket partitions classified items by confidence, preserving input order
// within AllItems and within each bucket.
func bucket(items []models.ClassifiedItem, hitlThreshold float64) Result {
	result := Result{AllItems: items}
	for _, item := range items {
		switch {
		case item.NeedsReview(hitlThreshold):
			result.Uncertain = append(result.Uncertain, item)
		case *item.IsVegetarian:
			result.ConfidentVegetarian = append(result.ConfidentVegetarian, item)
		default:
			result.ConfidentNonVeg = append(result.ConfidentNonVeg, item)
		}
	}
	return result
}
