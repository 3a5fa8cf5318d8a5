// Package reports reads stale PR reports written by upstream collection steps.
// Each report is a JSON file holding a bare array of records.
package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"stalepr/pkg/domain"
	"stalepr/pkg/logger"
	"stalepr/pkg/serrors"

	"go.uber.org/zap"
)

// Glob reads every report matching a filepath glob pattern.
type Glob struct {
	pattern string
}

// NewGlob returns a Glob for pattern.
func NewGlob(pattern string) *Glob {
	return &Glob{pattern: pattern}
}

// Pattern returns the glob pattern reports are matched against.
func (g *Glob) Pattern() string { return g.pattern }

// Records reads and merges the records of all matching reports. Files are
// merged in lexicographic path order so that ties in later ranking are
// reproducible. No matching files (a missing directory included) yields an
// empty slice.
func (g *Glob) Records(ctx context.Context) ([]domain.StaleRecord, error) {
	paths, err := filepath.Glob(g.pattern)
	if err != nil {
		return nil, fmt.Errorf("could not match reports %q: %w", g.pattern, err)
	}
	slices.Sort(paths)

	logger.Debug(ctx, "matched stale PR reports", zap.String("pattern", g.pattern), zap.Int("files", len(paths)))

	var merged []domain.StaleRecord
	for _, path := range paths {
		records, err := readReport(path)
		if err != nil {
			return nil, err
		}
		logger.Debug(ctx, "read stale PR report", zap.String("file", path), zap.Int("records", len(records)))
		merged = append(merged, records...)
	}

	return merged, nil
}

func readReport(path string) ([]domain.StaleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not read report %s", path)
	}

	records, err := DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse report %s: %w", path, err)
	}

	return records, nil
}
