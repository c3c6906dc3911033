// Package vectorstore wraps an embedded HNSW vector database (vego) to back
// the RAG evidence-retrieval tier. One collection holds every knowledge base
// entry's embedding; search returns nearest neighbours with a relevance
// score derived from cosine distance.
package vectorstore

import (
	"context"
	"fmt"

	"github.com/wzqhbustb/vego"
	hnsw "github.com/wzqhbustb/vego/index"

	"veggiemenu/internal/models"
	"veggiemenu/pkg/errors"
)

const collectionName = "knowledge_base"

// Entry pairs a knowledge base entry with the vector it should be indexed
// under; computed by the embedding service before Index is called.
type Entry struct {
	KB     models.KBEntry
	Vector []float32
}

// Store is the Vector Store component: index once at startup, search many
// times during classification.
type Store struct {
	db   *vego.DB
	coll *vego.Collection
}

// Open creates or reopens an on-disk vego database at dir, sized for the
// embedding dimension in use. Cosine distance is used so relevance = 1 -
// distance stays in a bounded, meaningfully-ordered range (see DESIGN.md).
func Open(dir string, dimension int) (*Store, error) {
	db, err := vego.Open(dir, vego.WithDimension(dimension), vego.WithDistanceFunc(hnsw.CosineDistance))
	if err != nil {
		return nil, errors.NewExternal("vectorstore.Open", "vego", "opening vector database", err)
	}
	coll, err := db.Collection(collectionName)
	if err != nil {
		return nil, errors.NewExternal("vectorstore.Open", "vego", "opening collection", err)
	}
	return &Store{db: db, coll: coll}, nil
}

// Index inserts one document per knowledge base entry, keyed by entry type
// and name (see docID) so re-indexing on restart upserts rather than duplicates.
func (s *Store) Index(ctx context.Context, entries []Entry) error {
	docs := make([]*vego.Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, &vego.Document{
			ID:     docID(e.KB),
			Vector: e.Vector,
			Metadata: map[string]interface{}{
				"name":          e.KB.Name,
				"description":   e.KB.Description,
				"is_vegetarian": e.KB.IsVegetarian,
				"category":      e.KB.Category,
				"type":          e.KB.Type,
				"notes":         e.KB.Notes,
			},
		})
	}
	if err := s.coll.InsertBatchContext(ctx, docs); err != nil {
		return errors.NewExternal("vectorstore.Index", "vego", "indexing knowledge base", err)
	}
	return nil
}

func docID(e models.KBEntry) string {
	return fmt.Sprintf("%s_%s", e.Type, e.Name)
}

// Search returns the topK nearest documents to queryVector as RAG hits with
// relevance already computed.
func (s *Store) Search(ctx context.Context, queryVector []float32, topK int) ([]models.RAGHit, error) {
	results, err := s.coll.SearchContext(ctx, queryVector, topK)
	if err != nil {
		return nil, errors.NewExternal("vectorstore.Search", "vego", "searching vector store", err)
	}

	hits := make([]models.RAGHit, 0, len(results))
	for _, r := range results {
		distance := float64(r.Distance)
		hits = append(hits, models.RAGHit{
			ID:        r.Document.ID,
			Document:  documentText(r.Document.Metadata),
			Metadata:  r.Document.Metadata,
			Distance:  distance,
			Relevance: 1 - distance,
		})
	}
	return hits, nil
}

// documentText rebuilds the "name: description" form an entry was embedded
// under, the same text the knowledge base's own KBEntry.Document() produces.
func documentText(metadata map[string]interface{}) string {
	name, _ := metadata["name"].(string)
	description, _ := metadata["description"].(string)
	entry := models.KBEntry{Name: name, Description: description}
	return entry.Document()
}

// Count reports how many documents are indexed, used for health reporting.
func (s *Store) Count() int {
	return s.coll.Count()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
