// Package monitoring 提供服务状态统计
package monitoring

import (
	"sync"
	"time"
)

// StatusTracker 服务状态跟踪器
type StatusTracker struct {
	mu sync.RWMutex

	startTime        time.Time
	totalRequests    int64
	totalPredictions int64
	validationErrors int64
	cacheHits        int64
	lastLatency      time.Duration

	modelType   string
	modelLoaded bool
}

// StatusSnapshot 状态快照
type StatusSnapshot struct {
	Status           string  `json:"status"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
	TotalRequests    int64   `json:"total_requests"`
	TotalPredictions int64   `json:"total_predictions"`
	ValidationErrors int64   `json:"validation_errors"`
	CacheHits        int64   `json:"cache_hits"`
	LastLatencyMs    float64 `json:"last_latency_ms"`
	ModelType        string  `json:"model_type"`
	ModelLoaded      bool    `json:"model_loaded"`
	Timestamp        string  `json:"timestamp"`
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{startTime: time.Now()}
}

func (t *StatusTracker) SetModelInfo(modelType string, loaded bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modelType = modelType
	t.modelLoaded = loaded
}

func (t *StatusTracker) RecordRequest() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalRequests++
}

func (t *StatusTracker) RecordPrediction(latency time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalPredictions++
	t.lastLatency = latency
}

func (t *StatusTracker) RecordValidationError() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.validationErrors++
}

func (t *StatusTracker) RecordCacheHit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheHits++
}

// Snapshot 返回当前状态快照
func (t *StatusTracker) Snapshot() StatusSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status := "ok"
	if !t.modelLoaded {
		status = "degraded"
	}

	return StatusSnapshot{
		Status:           status,
		UptimeSeconds:    time.Since(t.startTime).Seconds(),
		TotalRequests:    t.totalRequests,
		TotalPredictions: t.totalPredictions,
		ValidationErrors: t.validationErrors,
		CacheHits:        t.cacheHits,
		LastLatencyMs:    float64(t.lastLatency.Microseconds()) / 1000.0,
		ModelType:        t.modelType,
		ModelLoaded:      t.modelLoaded,
		Timestamp:        time.Now().Format(time.RFC3339),
	}
}
