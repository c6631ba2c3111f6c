package db

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	dbPath := "./test.db"
	if err := InitDB(dbPath); err != nil {
		os.Remove(dbPath)
		panic(err)
	}

	code := m.Run()

	CloseDB()
	os.Remove(dbPath)
	os.Exit(code)
}

func TestQueryRecommendation(t *testing.T) {
	for level := 1; level <= 5; level++ {
		rec, err := QueryRecommendation(level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if rec.Level != level {
			t.Errorf("level %d: got %d", level, rec.Level)
		}
		if rec.Title == "" || rec.Guidance == "" {
			t.Errorf("level %d: empty content", level)
		}
	}
}

func TestQueryRecommendationUnknownLevel(t *testing.T) {
	if _, err := QueryRecommendation(9); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	// Re-running the seed against a populated table must not duplicate rows.
	if err := seedRecommendations(); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM recommendations").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Fatalf("expected 5 rows, got %d", count)
	}
}
