package monitoring

import (
	"testing"
	"time"
)

func TestStatusTrackerSnapshot(t *testing.T) {
	tracker := NewStatusTracker()
	tracker.SetModelInfo("onnx", true)
	tracker.RecordRequest()
	tracker.RecordRequest()
	tracker.RecordPrediction(12 * time.Millisecond)
	tracker.RecordValidationError()
	tracker.RecordCacheHit()

	snap := tracker.Snapshot()
	if snap.Status != "ok" {
		t.Errorf("expected status ok, got %s", snap.Status)
	}
	if snap.TotalRequests != 2 {
		t.Errorf("expected 2 requests, got %d", snap.TotalRequests)
	}
	if snap.TotalPredictions != 1 {
		t.Errorf("expected 1 prediction, got %d", snap.TotalPredictions)
	}
	if snap.ValidationErrors != 1 {
		t.Errorf("expected 1 validation error, got %d", snap.ValidationErrors)
	}
	if snap.CacheHits != 1 {
		t.Errorf("expected 1 cache hit, got %d", snap.CacheHits)
	}
	if snap.LastLatencyMs != 12 {
		t.Errorf("expected 12ms latency, got %g", snap.LastLatencyMs)
	}
	if snap.ModelType != "onnx" || !snap.ModelLoaded {
		t.Errorf("unexpected model info: %+v", snap)
	}
}

func TestStatusTrackerDegradedWithoutModel(t *testing.T) {
	tracker := NewStatusTracker()
	if snap := tracker.Snapshot(); snap.Status != "degraded" {
		t.Errorf("expected degraded, got %s", snap.Status)
	}
}
