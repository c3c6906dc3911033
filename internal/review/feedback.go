package review

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"veggiemenu/internal/calculator"
	"veggiemenu/pkg/logging"
)

// FeedbackRecord is one appended line of the feedback log: a single human
// correction, never mutated after being written.
type FeedbackRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"request_id"`
	DishName     string    `json:"dish_name"`
	HumanLabel   bool      `json:"human_label"`
	FeedbackType string    `json:"feedback_type"`
}

// DishStats aggregates how often a dish name was corrected to vegetarian
// versus non-vegetarian.
type DishStats struct {
	VegCount    int `json:"veg_count"`
	NonVegCount int `json:"non_veg_count"`
}

// FeedbackSummary is the /feedback/stats response shape.
type FeedbackSummary struct {
	TotalCorrections int                  `json:"total_corrections"`
	UniqueDishes     int                  `json:"unique_dishes"`
	DishStats        map[string]DishStats `json:"dish_stats"`
	RecentFeedback   []FeedbackRecord     `json:"recent_feedback"`
}

// FeedbackLog is an append-only JSONL file of human corrections, used both
// to persist HITL decisions and as the raw material for knowledge-base
// expansion and accuracy analysis.
type FeedbackLog struct {
	mu   sync.Mutex
	path string
	log  *logging.ComponentLogger
}

// NewFeedbackLog prepares a feedback log at path, creating its parent
// directory the same way pkg/logging's file sink does for its own log file.
func NewFeedbackLog(path string, log *logging.Logger) (*FeedbackLog, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &FeedbackLog{path: path, log: log.WithComponent("feedback_log")}, nil
}

// Append writes one record per correction to the log. A write failure is
// logged as a warning and swallowed: feedback persistence must never fail
// the request that triggered it.
func (f *FeedbackLog) Append(requestID string, corrections []calculator.Correction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		f.log.Warn("failed to open feedback log", logging.String("path", f.path), logging.String("error", err.Error()))
		return
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, c := range corrections {
		record := FeedbackRecord{
			Timestamp:    time.Now().UTC(),
			RequestID:    requestID,
			DishName:     c.Name,
			HumanLabel:   c.IsVegetarian,
			FeedbackType: "hitl_correction",
		}
		line, err := json.Marshal(record)
		if err != nil {
			f.log.Warn("failed to marshal feedback record", logging.String("dish_name", c.Name))
			continue
		}
		if _, err := writer.Write(append(line, '\n')); err != nil {
			f.log.Warn("failed to write feedback record", logging.String("error", err.Error()))
			return
		}
	}
	if err := writer.Flush(); err != nil {
		f.log.Warn("failed to flush feedback log", logging.String("error", err.Error()))
	}
}

// Stats reads every record and aggregates per-dish counts plus the most
// recent 20 records.
func (f *FeedbackLog) Stats() (FeedbackSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		return FeedbackSummary{DishStats: map[string]DishStats{}}, nil
	}
	if err != nil {
		return FeedbackSummary{}, err
	}
	defer file.Close()

	var records []FeedbackRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec FeedbackRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			f.log.Warn("skipping malformed feedback record", logging.String("error", err.Error()))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return FeedbackSummary{}, err
	}

	dishes := make(map[string]DishStats)
	for _, rec := range records {
		stats := dishes[rec.DishName]
		if rec.HumanLabel {
			stats.VegCount++
		} else {
			stats.NonVegCount++
		}
		dishes[rec.DishName] = stats
	}

	recent := records
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}

	return FeedbackSummary{
		TotalCorrections: len(records),
		UniqueDishes:     len(dishes),
		DishStats:        dishes,
		RecentFeedback:   recent,
	}, nil
}
