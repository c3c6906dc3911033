package main

import (
	"context"
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"

	"veggiemenu/internal/api"
	"veggiemenu/internal/classifier"
	"veggiemenu/internal/embedding"
	"veggiemenu/internal/kb"
	"veggiemenu/internal/keyword"
	"veggiemenu/internal/llm"
	"veggiemenu/internal/menutool"
	"veggiemenu/internal/models"
	"veggiemenu/internal/review"
	"veggiemenu/internal/vectorstore"
	"veggiemenu/pkg/config"
	"veggiemenu/pkg/container"
	"veggiemenu/pkg/health"
	"veggiemenu/pkg/logging"
	"veggiemenu/pkg/metrics"
)

func main() {
	c := container.New()

	_ = c.Provide(func() *config.Config { return config.Load() }, true)

	_ = c.Provide(func(cfg *config.Config) (*logging.Logger, error) {
		logCfg := logging.DefaultLogConfig()
		switch strings.ToLower(cfg.LogLevel) {
		case "trace":
			logCfg.Level = logging.LevelTrace
		case "debug":
			logCfg.Level = logging.LevelDebug
		case "warn", "warning":
			logCfg.Level = logging.LevelWarn
		case "error":
			logCfg.Level = logging.LevelError
		}
		logCfg.Format = cfg.LogFormat
		logCfg.FilePath = cfg.LogFile
		logCfg.EnableFile = cfg.EnableFileLogging
		return logging.NewLogger(logCfg)
	}, true)

	_ = c.Provide(func(cfg *config.Config) (models.KnowledgeBase, error) { return kb.Load(cfg.KBOverridePath) }, true)

	_ = c.Provide(func(kb models.KnowledgeBase) *keyword.Matcher { return keyword.New(kb.Keywords) }, true)

	_ = c.Provide(func(cfg *config.Config) (*embedding.Service, error) {
		return embedding.New(cfg.OllamaBaseURL, cfg.EmbeddingModel, cfg.EmbeddingDim)
	}, true)

	_ = c.Provide(func(cfg *config.Config) (*vectorstore.Store, error) {
		return vectorstore.Open(cfg.VectorStoreDir, cfg.EmbeddingDim)
	}, true)

	_ = c.Provide(func(cfg *config.Config, log *logging.Logger) (llm.Provider, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return llm.Select(ctx, llm.SelectConfig{
			Preferred:     cfg.LLMProvider,
			OllamaBaseURL: cfg.OllamaBaseURL,
			OllamaModel:   cfg.OllamaModel,
			OpenAIAPIKey:  cfg.OpenAIAPIKey,
			OpenAIModel:   cfg.OpenAIModel,
			OpenAITimeout: cfg.OpenAIRequestTimeoutSeconds,
			Logger:        log,
		})
	}, true)

	_ = c.Provide(func(p llm.Provider, log *logging.Logger) *llm.Client { return llm.NewClient(p, log) }, true)

	_ = c.Provide(func(matcher *keyword.Matcher, store *vectorstore.Store, embedder *embedding.Service, llmClient *llm.Client, cfg *config.Config, log *logging.Logger) *classifier.Engine {
		return classifier.New(matcher, store, embedder, llmClient, classifier.Config{
			ConfidenceThreshold: cfg.ConfidenceThreshold,
			RAGTopK:             cfg.RAGTopK,
			RAGRelevanceFloor:   cfg.RAGRelevanceFloor,
			Currency:            cfg.Currency,
			LLMBatchSize:        cfg.LLMBatchSize,
		}, log)
	}, true)

	_ = c.Provide(func(engine *classifier.Engine, cfg *config.Config, log *logging.Logger) *menutool.Tool {
		return menutool.New(engine, menutool.Config{
			HITLThreshold: cfg.HITLThreshold,
			BatchEnabled:  cfg.LLMBatchEnabled,
			LLMBatchSize:  cfg.LLMBatchSize,
		}, log)
	}, true)

	_ = c.Provide(func() *review.Store { return review.NewStore() }, true)

	_ = c.Provide(func(cfg *config.Config, log *logging.Logger) (*review.FeedbackLog, error) {
		return review.NewFeedbackLog(cfg.FeedbackLogPath, log)
	}, true)

	var cfg *config.Config
	var log *logging.Logger
	if err := c.Resolve(&cfg); err != nil {
		stdlog.Fatal("config resolve:", err)
	}
	if err := c.Resolve(&log); err != nil {
		stdlog.Fatal("logger resolve:", err)
	}
	appLog := log.WithComponent("main")
	appLog.Info("starting vegetarian menu classification service", logging.String("env", cfg.Env))

	var kbData models.KnowledgeBase
	if err := c.Resolve(&kbData); err != nil {
		appLog.Fatal("failed to load knowledge base", err)
	}

	var embedder *embedding.Service
	var store *vectorstore.Store
	if err := c.Resolve(&embedder); err != nil {
		appLog.Fatal("failed to construct embedding service", err)
	}
	if err := c.Resolve(&store); err != nil {
		appLog.Fatal("failed to open vector store", err)
	}
	if err := indexKnowledgeBase(context.Background(), kbData, embedder, store); err != nil {
		appLog.Fatal("failed to index knowledge base", err)
	}

	var llmClient *llm.Client
	var tool *menutool.Tool
	var reviewStore *review.Store
	var feedbackLog *review.FeedbackLog
	if err := c.Resolve(&llmClient); err != nil {
		appLog.Fatal("failed to select llm provider", err)
	}
	if err := c.Resolve(&tool); err != nil {
		appLog.Fatal("failed to construct classifier tool", err)
	}
	if err := c.Resolve(&reviewStore); err != nil {
		appLog.Fatal("failed to construct review store", err)
	}
	if err := c.Resolve(&feedbackLog); err != nil {
		appLog.Fatal("failed to construct feedback log", err)
	}
	appLog.Info("llm provider selected", logging.String("provider", llmClient.ProviderName()))

	server := api.NewServer(tool, reviewStore, feedbackLog, store, embedder, llmClient, cfg.RAGTopK, log)

	healthManager := health.NewHealthManager(health.DefaultHealthConfig(), log)
	healthManager.RegisterChecker(health.NewStatsHealthChecker("vector_store", func() interface{} {
		return map[string]int{"indexed_documents": store.Count()}
	}))
	healthManager.RegisterChecker(health.NewStatsHealthChecker("review_store", func() interface{} {
		return map[string]int{"pending_reviews": reviewStore.Count()}
	}))
	healthManager.RegisterChecker(health.NewHTTPHealthChecker(cfg.OllamaBaseURL+"/api/tags", "ollama", 5*time.Second))

	router := mux.NewRouter()
	server.Routes(router)
	router.HandleFunc(cfg.HealthCheckPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthManager.CheckAll(r.Context()))
	}).Methods(http.MethodGet)
	if cfg.MetricsEnabled {
		router.Handle(cfg.MetricsPath, metrics.Handler()).Methods(http.MethodGet)
	}

	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		appLog.Info("received shutdown signal, initiating graceful shutdown")
		cancel()
	}()

	go func() {
		appLog.Info("server starting", logging.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("http server error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("http server shutdown error", err)
	}
	if err := store.Close(); err != nil {
		appLog.Error("vector store close error", err)
	}
	appLog.Info("application shutdown complete")
}

// indexKnowledgeBase embeds and indexes every knowledge base entry. Idempotent:
// re-running against an already-populated collection simply upserts by ID.
func indexKnowledgeBase(ctx context.Context, kbData models.KnowledgeBase, embedder *embedding.Service, store *vectorstore.Store) error {
	entries := kbData.Entries()
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Document()
	}

	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}

	indexEntries := make([]vectorstore.Entry, len(entries))
	for i, e := range entries {
		indexEntries[i] = vectorstore.Entry{KB: e, Vector: vectors[i]}
	}
	return store.Index(ctx, indexEntries)
}
