package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/huangsam/awardgap/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NaturalKey identifies a movie within one batch: lowercased, trimmed title plus year.
func NaturalKey(title string, year int) string {
	folded := cases.Lower(language.Und).String(strings.TrimSpace(title))
	return folded + "|" + strconv.Itoa(year)
}

// DedupeMovies collapses records sharing a natural key. The last record wins,
// and each surviving key keeps the position of its first occurrence.
func DedupeMovies(records []schema.MovieRecord) []schema.MovieRecord {
	index := make(map[string]int, len(records))
	out := make([]schema.MovieRecord, 0, len(records))
	for _, r := range records {
		key := NaturalKey(r.Title, r.Year)
		if i, ok := index[key]; ok {
			out[i] = r
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}

// Upserter writes movie batches to a store with insert-or-update semantics.
type Upserter struct {
	store contract.MovieStore
	now   func() time.Time
	newID func() (string, error)
}

// UpserterOption customizes an Upserter.
type UpserterOption func(*Upserter)

// WithClock overrides the time source used for createdAt and updatedAt.
func WithClock(now func() time.Time) UpserterOption {
	return func(u *Upserter) { u.now = now }
}

// WithIDGenerator overrides how new record ids are generated.
func WithIDGenerator(newID func() (string, error)) UpserterOption {
	return func(u *Upserter) { u.newID = newID }
}

// NewUpserter creates an Upserter backed by store.
func NewUpserter(store contract.MovieStore, opts ...UpserterOption) *Upserter {
	u := &Upserter{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// newTimeOrderedID returns a UUIDv7 string.
func newTimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// UpsertMany deduplicates records and writes the survivors in one batch.
// Titles are matched exactly by the store; the lowercased key only decides
// collisions inside the batch. An empty batch never reaches the store.
func (u *Upserter) UpsertMany(ctx context.Context, records []schema.MovieRecord) error {
	if len(records) == 0 {
		return nil
	}
	survivors := DedupeMovies(records)
	now := u.now()
	movies := make([]schema.Movie, len(survivors))
	for i, r := range survivors {
		id, err := u.newID()
		if err != nil {
			return fmt.Errorf("failed to generate movie id: %w", err)
		}
		movies[i] = schema.Movie{
			ID:        id,
			Year:      r.Year,
			Title:     r.Title,
			Studios:   r.Studios,
			Producers: r.Producers,
			Winner:    r.Winner,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	logging.FromContext(ctx).Debug("upserting movies",
		logging.FieldRows, len(records),
		logging.FieldKeys, len(movies))
	return u.store.BulkUpsert(ctx, movies)
}
