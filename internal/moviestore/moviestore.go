// Package moviestore persists movie records with upsert semantics.
package moviestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/schema"
)

// MovieStoreManager holds the process-wide movie store.
type MovieStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	movies       contract.MovieStore
}

var _ contract.StoreManager = &MovieStoreManager{} // Compile-time check

// GetMovieStore returns the movie store.
func (mgr *MovieStoreManager) GetMovieStore() contract.MovieStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.movies
}

// NewManager wraps an existing store. Useful for servers and tests that own the store.
func NewManager(store contract.MovieStore) *MovieStoreManager {
	return &MovieStoreManager{movies: store}
}

// Global Manager instance for main logic.
var (
	Manager   = &MovieStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStore initializes the global manager with a store for backend.
func InitStore(ctx context.Context, backend schema.DatabaseBackend, connStr, tableName string) error {
	var initErr error
	initOnce.Do(func() {
		store, err := NewMovieStore(ctx, backend, connStr, tableName)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize movie store: %w", err)
			return
		}
		Manager.Lock()
		Manager.movies = store
		Manager.Unlock()
	})
	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.movies != nil {
			_ = Manager.movies.Close()
		}
	})
}

// NewMovieStore returns the store implementation for backend.
func NewMovieStore(ctx context.Context, backend schema.DatabaseBackend, connStr, tableName string) (contract.MovieStore, error) {
	if err := contract.ValidateTableName(tableName); err != nil {
		return nil, err
	}
	switch backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return NewSQLStore(ctx, backend, connStr, tableName)
	case schema.MongoDBBackend:
		return NewMongoStore(ctx, connStr, tableName)
	case schema.NoneBackend:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, mongodb, or none", backend)
	}
}

// ClearStore removes all stored movies for the backend.
// For SQLite, it deletes the database file.
// For MySQL and PostgreSQL, it drops the table.
// For MongoDB, it drops the collection.
// For NoneBackend, it does nothing.
func ClearStore(ctx context.Context, backend schema.DatabaseBackend, connStr, tableName string) error {
	if err := contract.ValidateTableName(tableName); err != nil {
		return err
	}
	switch backend {
	case schema.SQLiteBackend:
		dbPath := sqlitePath(connStr)
		if dbPath == memoryDSN {
			return nil
		}
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbPath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		return clearSQLTable(ctx, driverName(backend), connStr, quoteTableName(tableName, backend))

	case schema.MongoDBBackend:
		return dropMongoCollection(ctx, connStr, tableName)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(ctx context.Context, driver, connStr, quotedTable string) error {
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTable)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", quotedTable, err)
	}
	return nil
}
