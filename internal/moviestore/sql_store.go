package moviestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// SQLStore stores movies in SQLite, MySQL or PostgreSQL.
type SQLStore struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
	connStr   string
}

var _ contract.MovieStore = &SQLStore{} // Compile-time check

// NewSQLStore opens the database and creates the movie table if needed.
func NewSQLStore(ctx context.Context, backend schema.DatabaseBackend, connStr, tableName string) (*SQLStore, error) {
	if err := contract.ValidateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := sqlitePath(connStr)
		db, err = sql.Open(driverName(backend), dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname?parseTime=true
		db, err = sql.Open(driverName(backend), connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open(driverName(backend), connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported SQL backend: %s", backend)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if _, err := db.ExecContext(ctx, getCreateTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SQLStore{
		db:        db,
		tableName: tableName,
		backend:   backend,
		connStr:   connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// It matches the first embedded migration.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quoted := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id CHAR(36) NOT NULL PRIMARY KEY,
				year INT NOT NULL,
				title VARCHAR(512) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
				studios TEXT NOT NULL,
				producers TEXT NOT NULL,
				winner BOOLEAN NOT NULL,
				created_at DATETIME(6) NOT NULL,
				updated_at DATETIME(6) NOT NULL,
				UNIQUE KEY uq_%s_title_year (title, year)
			);
		`, quoted, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				year INTEGER NOT NULL,
				title TEXT NOT NULL,
				studios TEXT NOT NULL,
				producers TEXT NOT NULL,
				winner BOOLEAN NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL,
				UNIQUE (title, year)
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				year INTEGER NOT NULL,
				title TEXT NOT NULL,
				studios TEXT NOT NULL,
				producers TEXT NOT NULL,
				winner INTEGER NOT NULL,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				UNIQUE (title, year)
			);
		`, quoted)
	}
}

// getUpsertQuery returns the insert-or-update statement for the backend.
// On conflict, id and created_at keep their stored values.
func (s *SQLStore) getUpsertQuery() string {
	quoted := quoteTableName(s.tableName, s.backend)
	const columns = "id, year, title, studios, producers, winner, created_at, updated_at"
	switch s.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE studios = new.studios, producers = new.producers, winner = new.winner, updated_at = new.updated_at`, quoted, columns)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (title, year) DO UPDATE SET studios = EXCLUDED.studios, producers = EXCLUDED.producers, winner = EXCLUDED.winner, updated_at = EXCLUDED.updated_at`, quoted, columns)

	default: // SQLite
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (title, year) DO UPDATE SET studios = excluded.studios, producers = excluded.producers, winner = excluded.winner, updated_at = excluded.updated_at`, quoted, columns)
	}
}

// BulkUpsert writes all movies inside one transaction.
func (s *SQLStore) BulkUpsert(ctx context.Context, movies []schema.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.getUpsertQuery())
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, m := range movies {
		if _, err := stmt.ExecContext(ctx,
			m.ID,
			m.Year,
			m.Title,
			m.Studios,
			m.Producers,
			m.Winner,
			timeArg(m.CreatedAt, s.backend),
			timeArg(m.UpdatedAt, s.backend),
		); err != nil {
			return fmt.Errorf("failed to upsert movie %q (%d): %w", m.Title, m.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert: %w", err)
	}
	return nil
}

// ListMovies returns every movie ordered by year, then title.
func (s *SQLStore) ListMovies(ctx context.Context) ([]schema.Movie, error) {
	query := fmt.Sprintf(`SELECT id, year, title, studios, producers, winner, created_at, updated_at
		FROM %s ORDER BY year, title`, quoteTableName(s.tableName, s.backend))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	movies := []schema.Movie{}
	for rows.Next() {
		var m schema.Movie
		var createdAt, updatedAt any
		if err := rows.Scan(&m.ID, &m.Year, &m.Title, &m.Studios, &m.Producers, &m.Winner, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		if m.CreatedAt, err = parseTimeValue(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if m.UpdatedAt, err = parseTimeValue(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}
	return movies, nil
}

// GetStatus returns status information about the movie table.
func (s *SQLStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
		Table:     s.tableName,
	}
	if s.db == nil {
		return status, nil
	}

	quoted := quoteTableName(s.tableName, s.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoted)
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalMovies); err != nil {
		return status, fmt.Errorf("failed to get total movies: %w", err)
	}

	winnerQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE winner = %s", quoted, s.trueLiteral())
	if err := s.db.QueryRowContext(ctx, winnerQuery).Scan(&status.TotalWinners); err != nil {
		return status, fmt.Errorf("failed to get total winners: %w", err)
	}

	if status.TotalMovies > 0 {
		var oldest, newest any
		rangeQuery := fmt.Sprintf("SELECT MIN(updated_at), MAX(updated_at) FROM %s", quoted)
		if err := s.db.QueryRowContext(ctx, rangeQuery).Scan(&oldest, &newest); err != nil {
			return status, fmt.Errorf("failed to get update range: %w", err)
		}
		status.OldestUpdate, _ = parseTimeValue(oldest)
		status.LastUpdate, _ = parseTimeValue(newest)
	}

	status.SchemaVersion, status.SchemaDirty = s.schemaVersion(ctx)
	status.TableSizeBytes = s.tableSize(ctx, status.TotalMovies)
	return status, nil
}

func (s *SQLStore) trueLiteral() string {
	if s.backend == schema.SQLiteBackend {
		return "1"
	}
	return "TRUE"
}

// schemaVersion reads the migration table. A missing table means version 0.
func (s *SQLStore) schemaVersion(ctx context.Context) (int, bool) {
	var version int
	var dirty bool
	query := fmt.Sprintf("SELECT version, dirty FROM %s LIMIT 1", quoteTableName(migrationsTable, s.backend))
	if err := s.db.QueryRowContext(ctx, query).Scan(&version, &dirty); err != nil {
		return 0, false
	}
	return version, dirty
}

// tableSize estimates the storage used by the movie table.
func (s *SQLStore) tableSize(ctx context.Context, totalMovies int) int64 {
	fallback := int64(totalMovies) * 256 // Rough estimate
	var size int64
	switch s.backend {
	case schema.SQLiteBackend:
		if err := s.db.QueryRowContext(ctx, "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").Scan(&size); err != nil {
			return 0
		}
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(s.connStr)
		if err != nil || cfg.DBName == "" {
			return fallback
		}
		sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		if err := s.db.QueryRowContext(ctx, sizeQuery, cfg.DBName, s.tableName).Scan(&size); err != nil {
			return fallback
		}
	case schema.PostgreSQLBackend:
		if err := s.db.QueryRowContext(ctx, "SELECT pg_total_relation_size($1)", s.tableName).Scan(&size); err != nil {
			return fallback
		}
	}
	return size
}

// Close closes the underlying DB connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
