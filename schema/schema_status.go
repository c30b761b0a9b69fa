package schema

import "time"

// StoreStatus represents the status of the movie store.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	Table          string    `json:"table"`
	TotalMovies    int       `json:"total_movies"`
	TotalWinners   int       `json:"total_winners"`
	OldestUpdate   time.Time `json:"oldest_update"`
	LastUpdate     time.Time `json:"last_update"`
	SchemaVersion  int       `json:"schema_version"`
	SchemaDirty    bool      `json:"schema_dirty"`
	TableSizeBytes int64     `json:"table_size_bytes"`
}
