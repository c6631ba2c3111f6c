package http

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"cardioscreen/db"
	"cardioscreen/ml"
	"cardioscreen/monitoring"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var statusTracker *monitoring.StatusTracker

// queryRecommendation is a variable so handler tests can stub out the store.
var queryRecommendation = db.QueryRecommendation

func SetStatusTracker(t *monitoring.StatusTracker) {
	statusTracker = t
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleIndex)
	mux.HandleFunc("GET /recommendation/{level}", handleRecommendationPage)
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/recommendation/{level}", handleRecommendation)
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		FeatureNames []string
	}{FeatureNames: ml.FeatureNames()}

	if err := pageTemplates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if statusTracker == nil {
		respondJSON(w, map[string]string{"status": "ok"})
		return
	}
	respondJSON(w, statusTracker.Snapshot())
}

func handleRecommendation(w http.ResponseWriter, r *http.Request) {
	level, err := parseLevel(r.PathValue("level"))
	if err != nil {
		http.Error(w, `{"error":"level must be between 1 and 5"}`, http.StatusBadRequest)
		return
	}

	rec, err := queryRecommendation(level)
	if err != nil {
		http.Error(w, `{"error":"recommendation not found"}`, http.StatusNotFound)
		return
	}

	respondJSON(w, rec)
}

func handleRecommendationPage(w http.ResponseWriter, r *http.Request) {
	level, err := parseLevel(r.PathValue("level"))
	if err != nil {
		http.Error(w, "level must be between 1 and 5", http.StatusBadRequest)
		return
	}

	rec, err := queryRecommendation(level)
	if err != nil {
		http.Error(w, "recommendation not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "recommendation.html", rec); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func parseLevel(raw string) (int, error) {
	level, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if level < ml.RiskVeryLow || level > ml.RiskVeryHigh {
		return 0, strconv.ErrRange
	}
	return level, nil
}

func respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
