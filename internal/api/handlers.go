// Package api is the HTTP transport layer: gorilla/mux handlers translating
// JSON requests into calls against the Classifier Tool, Calculator, Review
// Store and Feedback Log.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"veggiemenu/internal/calculator"
	"veggiemenu/internal/embedding"
	"veggiemenu/internal/llm"
	"veggiemenu/internal/menutool"
	"veggiemenu/internal/models"
	"veggiemenu/internal/review"
	"veggiemenu/internal/vectorstore"
	"veggiemenu/pkg/errors"
	"veggiemenu/pkg/logging"
	"veggiemenu/pkg/metrics"

	"github.com/gorilla/mux"
)

var (
	mClassifyRequests = metrics.Default.Counter("classify_requests_total", "Total /classify requests handled")
	mReviewRequests   = metrics.Default.Counter("review_requests_total", "Total /review requests handled")
	mNeedsReview      = metrics.Default.Counter("classify_needs_review_total", "Classification responses that escalated to HITL")
)

// Server wires the HTTP handlers to the application's components.
type Server struct {
	tool        *menutool.Tool
	reviewStore *review.Store
	feedbackLog *review.FeedbackLog
	vectorStore *vectorstore.Store
	embedder    *embedding.Service
	llmClient   *llm.Client
	defaultTopK int
	log         *logging.ComponentLogger
}

// NewServer builds the API layer around already-constructed components.
func NewServer(tool *menutool.Tool, reviewStore *review.Store, feedbackLog *review.FeedbackLog, vectorStore *vectorstore.Store, embedder *embedding.Service, llmClient *llm.Client, defaultTopK int, log *logging.Logger) *Server {
	return &Server{
		tool:        tool,
		reviewStore: reviewStore,
		feedbackLog: feedbackLog,
		vectorStore: vectorStore,
		embedder:    embedder,
		llmClient:   llmClient,
		defaultTopK: defaultTopK,
		log:         log.WithComponent("api"),
	}
}

// Routes registers every handler onto a gorilla/mux router.
func (s *Server) Routes(router *mux.Router) {
	router.HandleFunc("/classify", s.handleClassify).Methods(http.MethodPost)
	router.HandleFunc("/review", s.handleReview).Methods(http.MethodPost)
	router.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	router.HandleFunc("/parse-assist", s.handleParseAssist).Methods(http.MethodPost)
	router.HandleFunc("/feedback/stats", s.handleFeedbackStats).Methods(http.MethodGet)
}

type classifyRequest struct {
	RequestID string            `json:"request_id"`
	Items     []models.MenuItem `json:"items"`
}

type classifySuccessResponse struct {
	Status            string                   `json:"status"`
	VegetarianItems    []models.ClassifiedItem `json:"vegetarian_items"`
	TotalSum           float64                  `json:"total_sum"`
	AllItems           []models.ClassifiedItem  `json:"all_items"`
}

type classifyNeedsReviewResponse struct {
	Status          string                  `json:"status"`
	ConfidentItems  []models.ClassifiedItem `json:"confident_items"`
	UncertainItems  []models.ClassifiedItem `json:"uncertain_items"`
	PartialSum      models.PartialResult    `json:"partial_sum"`
	AllItems        []models.ClassifiedItem `json:"all_items"`
}

// handleClassify is the classification entry point: it runs the Classifier
// Tool over the request's items and replies with either a "success" or
// "needs_review" shape depending on whether any item was left uncertain.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	mClassifyRequests.Inc(1)

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidation("api.handleClassify", "malformed request body", err))
		return
	}
	if err := validateItems(req.Items); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.tool.Classify(r.Context(), req.Items)
	if err != nil {
		s.log.Error("classification failed", err, logging.String("request_id", req.RequestID))
		writeError(w, errors.NewBiz("api.handleClassify", "classification failed", err))
		return
	}

	if len(result.Uncertain) == 0 {
		total := calculator.Sum(result.ConfidentVegetarian)
		writeJSON(w, http.StatusOK, classifySuccessResponse{
			Status:          "success",
			VegetarianItems: result.ConfidentVegetarian,
			TotalSum:        total.TotalSum,
			AllItems:        result.AllItems,
		})
		return
	}

	mNeedsReview.Inc(1)
	confidentTotal := calculator.Sum(result.ConfidentVegetarian)
	partial := models.PartialResult{
		TotalSum:       confidentTotal.TotalSum,
		ItemCount:      len(result.AllItems),
		PendingCount:   len(result.Uncertain),
		CertainSum:     confidentTotal.TotalSum,
		UncertainCount: len(result.Uncertain),
	}
	s.reviewStore.Put(req.RequestID, result.AllItems, partial)

	confident := append(append([]models.ClassifiedItem{}, result.ConfidentVegetarian...), result.ConfidentNonVeg...)
	writeJSON(w, http.StatusOK, classifyNeedsReviewResponse{
		Status:         "needs_review",
		ConfidentItems: confident,
		UncertainItems: result.Uncertain,
		PartialSum:     partial,
		AllItems:       result.AllItems,
	})
}

type reviewRequest struct {
	RequestID   string                    `json:"request_id"`
	Corrections []calculator.Correction   `json:"corrections"`
}

type reviewResponse struct {
	RequestID          string                  `json:"request_id"`
	VegetarianItems    []models.ClassifiedItem `json:"vegetarian_items"`
	TotalSum           float64                 `json:"total_sum"`
	AppliedCorrections int                     `json:"applied_corrections"`
}

// handleReview is the correction entry point: it consumes a pending review
// (erroring not-found if none exists), logs the feedback, and recomputes
// the vegetarian total with corrections applied.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	mReviewRequests.Inc(1)

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidation("api.handleReview", "malformed request body", err))
		return
	}

	record, err := s.reviewStore.Take(req.RequestID)
	if err != nil {
		s.log.Warn("review submitted for unknown request", logging.String("request_id", req.RequestID))
		writeError(w, err)
		return
	}

	s.feedbackLog.Append(req.RequestID, req.Corrections)

	recomputed := calculator.Recompute(record.Items, req.Corrections)
	writeJSON(w, http.StatusOK, reviewResponse{
		RequestID:          req.RequestID,
		VegetarianItems:    recomputed.VegetarianItems,
		TotalSum:           recomputed.TotalSum,
		AppliedCorrections: recomputed.CorrectionsApplied,
	})
}

type searchResponse struct {
	Query   string            `json:"query"`
	Results []models.RAGHit   `json:"results"`
}

// handleSearch is the debug vector-search endpoint: embed the query and
// return the nearest knowledge base entries as-is, with no classification
// logic applied.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, errors.NewValidation("api.handleSearch", "query parameter is required", nil))
		return
	}
	topK := s.defaultTopK
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			topK = parsed
		}
	}

	vec, err := s.embedder.Embed(r.Context(), query)
	if err != nil {
		writeError(w, errors.NewExternal("api.handleSearch", "embedding", "failed to embed query", err))
		return
	}
	hits, err := s.vectorStore.Search(r.Context(), vec, topK)
	if err != nil {
		writeError(w, errors.NewExternal("api.handleSearch", "vectorstore", "failed to search", err))
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: hits})
}

type parseAssistRequest struct {
	Prompt string `json:"prompt"`
}

type parseAssistResponse struct {
	Result string `json:"result"`
}

// handleParseAssist is a raw LLM passthrough consumed by the out-of-scope
// OCR line parser: it sends the prompt straight to the active provider with
// no system prompt or evidence shaping.
func (s *Server) handleParseAssist(w http.ResponseWriter, r *http.Request) {
	var req parseAssistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidation("api.handleParseAssist", "malformed request body", err))
		return
	}
	if req.Prompt == "" {
		writeError(w, errors.NewValidation("api.handleParseAssist", "prompt is required", nil))
		return
	}

	result, err := s.llmClient.Generate(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, errors.NewExternal("api.handleParseAssist", "llm", "provider call failed", err))
		return
	}
	writeJSON(w, http.StatusOK, parseAssistResponse{Result: result})
}

// handleFeedbackStats exposes the feedback aggregate over submitted corrections.
func (s *Server) handleFeedbackStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.feedbackLog.Stats()
	if err != nil {
		writeError(w, errors.NewExternal("api.handleFeedbackStats", "feedback_log", "failed to read feedback log", err))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func validateItems(items []models.MenuItem) error {
	if len(items) == 0 {
		return errors.NewValidation("api.validateItems", "items must not be empty", nil)
	}
	for _, item := range items {
		if item.Name == "" {
			return errors.NewValidation("api.validateItems", "item name must not be empty", nil)
		}
		if item.Price < 0 {
			return errors.NewValidation("api.validateItems", "item price must not be negative", nil)
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

