// Package embedding wraps a langchaingo embedder (backed by a local Ollama
// model) so the rest of the service only has to deal with plain float32
// vectors.
package embedding

import (
	"context"
	"runtime"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"

	"veggiemenu/pkg/errors"
)

// Service is the Embedding Service component: turns dish/ingredient text
// into vectors for the vector store to index and search.
type Service struct {
	embedder  embeddings.Embedder
	dimension int
}

// New connects to an Ollama server and builds an embedder for the given
// model. dimension is the vector length the caller expects back; it is only
// reported by Dimension and never checked against the vectors the model
// returns, whose length the model itself determines.
func New(baseURL, model string, dimension int) (*Service, error) {
	llm, err := ollama.New(ollama.WithServerURL(baseURL), ollama.WithModel(model))
	if err != nil {
		return nil, errors.NewExternal("embedding.New", "ollama", "connecting to embedding model", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, errors.NewExternal("embedding.New", "ollama", "constructing embedder", err)
	}
	return &Service{embedder: embedder, dimension: dimension}, nil
}

// Embed returns the vector for a single piece of text.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, errors.NewExternal("embedding.Embed", "ollama", "embedding text", err)
	}
	return vec, nil
}

// EmbedBatch returns one vector per input text, in the same order.
func (s *Service) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, errors.NewExternal("embedding.EmbedBatch", "ollama", "embedding batch", err)
	}
	return vecs, nil
}

// Dimension reports the configured vector length.
func (s *Service) Dimension() int { return s.dimension }

// ClearCache releases transient scratch memory the embedding backend may
// have accumulated across a batch (model runtime buffers, arena
// allocations) by cooperating with the garbage collector.
func ClearCache() {
	runtime.GC()
}
