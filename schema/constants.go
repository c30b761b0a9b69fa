package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the movie store.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	MongoDBBackend    DatabaseBackend = "mongodb"
	NoneBackend       DatabaseBackend = "none" // in-memory
)

// Movie list columns, in the order they appear in the input header.
const (
	ColumnYear      = "year"
	ColumnTitle     = "title"
	ColumnStudios   = "studios"
	ColumnProducers = "producers"
	ColumnWinner    = "winner"
)

// WinnerToken is the only value that marks a movie as a winner.
const WinnerToken = "yes"

// DefaultTableName is the table (or collection) holding movie records.
const DefaultTableName = "movies"

// PopulateMessage is the message reported after a successful ingestion.
const PopulateMessage = "Data processed successfully"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	MongoDBBackend:    {},
	NoneBackend:       {},
}

// RequiresConnectionString reports whether the backend needs a connection string.
func (b DatabaseBackend) RequiresConnectionString() bool {
	switch b {
	case MySQLBackend, PostgreSQLBackend, MongoDBBackend:
		return true
	default:
		return false
	}
}

// IsSQL reports whether the backend is served by database/sql.
func (b DatabaseBackend) IsSQL() bool {
	switch b {
	case SQLiteBackend, MySQLBackend, PostgreSQLBackend:
		return true
	default:
		return false
	}
}
