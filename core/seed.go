package core

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/awardgap/internal/contract"
	"github.com/huangsam/awardgap/internal/logging"
	"github.com/huangsam/awardgap/schema"
)

// PopulateFromFile reads a movie list from path and populates the store with it.
func PopulateFromFile(ctx context.Context, mgr contract.StoreManager, path string) (schema.PopulateResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return schema.PopulateResult{}, fmt.Errorf("failed to read movie list %s: %w", path, err)
	}
	result, err := PopulateMovies(ctx, mgr, string(content))
	if err != nil {
		return schema.PopulateResult{}, fmt.Errorf("failed to populate from %s: %w", path, err)
	}
	logging.FromContext(ctx).Info("populated movies from file",
		logging.FieldComponent, "seed",
		logging.FieldRows, result.Count,
		"file", path)
	return result, nil
}
