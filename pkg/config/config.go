package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every environment-driven knob the service reads at startup.
type Config struct {
	Port     string
	Env      string // development, staging, production
	Currency string // currency label attached to classified items and sums

	// Classification thresholds
	ConfidenceThreshold float64 // decisive-tier cutoff
	HITLThreshold       float64 // below this, item is escalated for review
	RAGTopK             int
	RAGRelevanceFloor   float64 // hits below this relevance are ignored

	// LLM batching
	LLMBatchEnabled bool
	LLMBatchSize    int

	// Knowledge base
	EmbeddingModel string
	EmbeddingDim   int
	KBOverridePath string // optional external dataset; "" = embedded only
	VectorStoreDir string // on-disk path for the vego database

	// LLM provider selection and credentials
	LLMProvider   string // "ollama" or "openai", preferred provider
	OllamaBaseURL string
	OllamaModel   string
	OpenAIAPIKey  string
	OpenAIModel   string

	// OpenAI client/circuit-breaker settings
	OpenAITimeout               time.Duration
	OpenAIRequestTimeoutSeconds int
	OpenAIMaxTokens             int
	OpenAITemperature           float64

	// Loaded from WORKER_COUNT; no component reads it (the classifier tool
	// processes items sequentially).
	WorkerCount int

	// Logging
	LogLevel          string
	LogFormat         string // "json" or "text"
	LogFile           string
	EnableFileLogging bool

	// Feedback log
	FeedbackLogPath string

	// Health/metrics
	HealthCheckPath string
	MetricsEnabled  bool
	MetricsPath     string
}

// Load reads configuration from the environment, applying the same
// default-aware getEnv/strconv idiom used throughout this codebase.
func Load() *Config {
	confThreshold, _ := strconv.ParseFloat(getEnv("CONFIDENCE_THRESHOLD", "0.6"), 64)
	hitlThreshold, _ := strconv.ParseFloat(getEnv("HITL_THRESHOLD", "0.4"), 64)
	ragTopK, _ := strconv.Atoi(getEnv("RAG_TOP_K", "5"))
	ragFloor, _ := strconv.ParseFloat(getEnv("RAG_RELEVANCE_FLOOR", "0.3"), 64)

	llmBatchEnabled, _ := strconv.ParseBool(getEnv("LLM_BATCH_ENABLED", "true"))
	llmBatchSize, _ := strconv.Atoi(getEnv("LLM_BATCH_SIZE", "8"))

	embeddingDim, _ := strconv.Atoi(getEnv("EMBEDDING_DIM", "384"))

	openAITemp, _ := strconv.ParseFloat(getEnv("OPENAI_TEMPERATURE", "0.1"), 64)
	openAIMaxTokens, _ := strconv.Atoi(getEnv("OPENAI_MAX_TOKENS", "250"))
	openAIReqTimeoutSec, _ := strconv.Atoi(getEnv("OPENAI_REQUEST_TIMEOUT_SECONDS", "60"))

	workerCount, _ := strconv.Atoi(getEnv("WORKER_COUNT", "0")) // 0 = use default

	enableFileLogging, _ := strconv.ParseBool(getEnv("ENABLE_FILE_LOGGING", "false"))
	env := strings.ToLower(getEnv("ENV", "development"))
	metricsEnabled, _ := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      env,
		Currency: getEnv("CURRENCY", "USD"),

		ConfidenceThreshold: confThreshold,
		HITLThreshold:       hitlThreshold,
		RAGTopK:             ragTopK,
		RAGRelevanceFloor:   ragFloor,

		LLMBatchEnabled: llmBatchEnabled,
		LLMBatchSize:    llmBatchSize,

		EmbeddingModel: getEnv("EMBEDDING_MODEL", "all-minilm"),
		EmbeddingDim:   embeddingDim,
		KBOverridePath: getEnv("KB_OVERRIDE_PATH", ""),
		VectorStoreDir: getEnv("VECTOR_STORE_DIR", "./data/vectorstore"),

		LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.2"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		OpenAITimeout:               time.Duration(openAIReqTimeoutSec) * time.Second,
		OpenAIRequestTimeoutSeconds: openAIReqTimeoutSec,
		OpenAIMaxTokens:             openAIMaxTokens,
		OpenAITemperature:           openAITemp,

		WorkerCount: workerCount,

		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		LogFile:           getEnv("LOG_FILE", "/var/log/veggiemenu/app.log"),
		EnableFileLogging: enableFileLogging,

		FeedbackLogPath: getEnv("FEEDBACK_LOG_PATH", "/tmp/hitl_feedback.jsonl"),

		HealthCheckPath: getEnv("HEALTH_CHECK_PATH", "/health"),
		MetricsEnabled:  metricsEnabled,
		MetricsPath:     getEnv("METRICS_PATH", "/metrics"),
	}

	log.Printf("Config: provider=%s confidence_threshold=%.2f hitl_threshold=%.2f batch_enabled=%v",
		cfg.LLMProvider, cfg.ConfidenceThreshold, cfg.HITLThreshold, cfg.LLMBatchEnabled)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
