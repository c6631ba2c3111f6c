package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"cardioscreen/ml"
)

// Predictor is the inference call the handler depends on. The production
// implementation is the ONNX-backed ml.Model; tests inject a fake.
type Predictor interface {
	Predict(features []float64) (class int, probability float64, err error)
}

var model Predictor

// Inference is deterministic for a fixed artifact, so identical vectors can
// be answered from cache. Labels are localized per request and stay out of
// the cached value.
type cachedPrediction struct {
	Class       int
	Probability float64
}

var predictionCache *lru.Cache[string, cachedPrediction]

func init() {
	predictionCache, _ = lru.New[string, cachedPrediction](512)
}

// SetModel installs the shared model handle. Pass nil to mark the model
// unavailable.
func SetModel(p Predictor) {
	model = p
}

// InitPredictionCache resizes the prediction cache (called from main with the
// configured size).
func InitPredictionCache(size int) error {
	cache, err := lru.New[string, cachedPrediction](size)
	if err != nil {
		return err
	}
	predictionCache = cache
	return nil
}

func RegisterPredictHandlers(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/predict", handlePredict)
}

// PredictResponse is the prediction payload rendered to the client.
type PredictResponse struct {
	Probability float64 `json:"probability"`
	Class       int     `json:"class"`
	RiskLevel   int     `json:"risk_level"`
	Label       string  `json:"label"`
}

func handlePredict(w http.ResponseWriter, r *http.Request) {
	if statusTracker != nil {
		statusTracker.RecordRequest()
	}

	values, err := requestValues(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	features, err := ml.ParseFeatures(values)
	if err != nil {
		if statusTracker != nil {
			statusTracker.RecordValidationError()
		}
		var verr *ml.ValidationError
		if errors.As(err, &verr) {
			writeFieldError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if model == nil {
		writeError(w, http.StatusServiceUnavailable, "model not loaded")
		return
	}

	vector := ml.FeatureVector(features)
	key := cacheKey(vector)

	cached, hit := predictionCache.Get(key)
	if hit {
		if statusTracker != nil {
			statusTracker.RecordCacheHit()
		}
	} else {
		start := time.Now()
		class, probability, err := model.Predict(vector)
		if err != nil {
			var verr *ml.ValidationError
			if errors.As(err, &verr) {
				writeFieldError(w, verr)
				return
			}
			writeError(w, http.StatusInternalServerError, "prediction failed")
			return
		}
		if statusTracker != nil {
			statusTracker.RecordPrediction(time.Since(start))
		}
		cached = cachedPrediction{Class: class, Probability: probability}
		predictionCache.Add(key, cached)
	}

	level := ml.RiskLevel(cached.Probability)
	respondJSON(w, PredictResponse{
		Probability: cached.Probability,
		Class:       cached.Class,
		RiskLevel:   level,
		Label:       riskLabel(level, r.Header.Get("Accept-Language")),
	})
}

// requestValues flattens the request body into named string fields. JSON
// bodies may carry numbers, strings, or booleans; forms are already strings.
func requestValues(r *http.Request) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()

		var body map[string]interface{}
		if err := decoder.Decode(&body); err != nil {
			return nil, err
		}

		values := make(map[string]string, len(body))
		for key, raw := range body {
			switch v := raw.(type) {
			case string:
				values[key] = v
			case json.Number:
				values[key] = v.String()
			case bool:
				values[key] = fmt.Sprintf("%t", v)
			default:
				values[key] = fmt.Sprint(v)
			}
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}
	return values, nil
}

func cacheKey(vector []float64) string {
	parts := make([]string, len(vector))
	for i, v := range vector {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ",")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeFieldError(w http.ResponseWriter, verr *ml.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{
		"error": verr.Error(),
		"field": verr.Field,
	})
}
