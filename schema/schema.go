// Package schema has configs, models and constants for all parts of awardgap.
package schema

import "time"

// MovieRecord is one validated row of the movie list.
// It carries the natural key (Title, Year) plus the credited parties.
type MovieRecord struct {
	Year      int    `json:"year"`
	Title     string `json:"title"`
	Studios   string `json:"studios"`
	Producers string `json:"producers"` // may list several names joined by "," or " and "
	Winner    bool   `json:"winner"`
}

// Movie is a persisted movie record.
// ID and CreatedAt are assigned on first insert and never change afterwards.
type Movie struct {
	ID        string    `json:"id"`
	Year      int       `json:"year"`
	Title     string    `json:"title"`
	Studios   string    `json:"studios"`
	Producers string    `json:"producers"`
	Winner    bool      `json:"winner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Record returns the user-provided fields of the movie.
func (m Movie) Record() MovieRecord {
	return MovieRecord{
		Year:      m.Year,
		Title:     m.Title,
		Studios:   m.Studios,
		Producers: m.Producers,
		Winner:    m.Winner,
	}
}

// PopulateResult is returned after a successful ingestion.
type PopulateResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
