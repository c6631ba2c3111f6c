package db

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

var database *sql.DB

// Recommendation is the static advice content shown for a risk level. It is
// reference content, not a record of predictions.
type Recommendation struct {
	Level    int    `json:"level"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Guidance string `json:"guidance"`
}

// InitDB initializes the SQLite database and seeds the recommendation
// content if the table is empty.
func InitDB(path string) error {
	var err error
	database, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	query := `
    CREATE TABLE IF NOT EXISTS recommendations (
        level INTEGER PRIMARY KEY,
        title VARCHAR(100),
        summary TEXT,
        guidance TEXT
    );`
	if _, err := database.Exec(query); err != nil {
		return err
	}

	return seedRecommendations()
}

// CloseDB closes the database connection.
func CloseDB() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// QueryRecommendation returns the advice content for a risk level (1..5).
func QueryRecommendation(level int) (*Recommendation, error) {
	if database == nil {
		return nil, errors.New("database not initialized")
	}

	row := database.QueryRow(
		"SELECT level, title, summary, guidance FROM recommendations WHERE level = ?",
		level,
	)

	var rec Recommendation
	if err := row.Scan(&rec.Level, &rec.Title, &rec.Summary, &rec.Guidance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("recommendation not found")
		}
		return nil, err
	}
	return &rec, nil
}

func seedRecommendations() error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM recommendations").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []Recommendation{
		{1, "Very Low Risk", "Your indicators are in a healthy range.",
			"Keep up regular exercise and an annual checkup."},
		{2, "Low to Moderate Risk", "A few indicators are slightly elevated.",
			"Review diet and activity habits; recheck within a year."},
		{3, "Moderate Risk", "Several indicators suggest elevated cardiovascular load.",
			"Schedule a consultation with a physician and monitor blood pressure."},
		{4, "High Risk", "Indicators point to a significant likelihood of heart disease.",
			"See a cardiologist soon; further diagnostic tests are advised."},
		{5, "Very High Risk", "Indicators strongly suggest heart disease.",
			"Seek medical attention promptly; do not delay a cardiology referral."},
	}

	tx, err := database.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO recommendations (level, title, summary, guidance) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range seed {
		if _, err := stmt.Exec(rec.Level, rec.Title, rec.Summary, rec.Guidance); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
