package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/freq"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/store"
)

type coverageKey struct {
	runID       string
	granularity int
	threshold   float64
}

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu        sync.RWMutex
	runs      map[string]store.Run
	summaries map[string][]corpus.Summary
	coverage  map[coverageKey]store.CoverageTable
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:      make(map[string]store.Run),
		summaries: make(map[string][]corpus.Summary),
		coverage:  make(map[coverageKey]store.CoverageTable),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return internalerr.ErrInvalidInput
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, internalerr.ErrNotFound
	}
	return r, nil
}

// ListRuns returns all runs sorted by ID (chronological for ULIDs).
func (s *Store) ListRuns(ctx context.Context) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SaveSummaries replaces a run's summaries.
func (s *Store) SaveSummaries(ctx context.Context, runID string, sums []corpus.Summary) error {
	cp := make([]corpus.Summary, len(sums))
	copy(cp, sums)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Source < cp[j].Source })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[runID] = cp
	return nil
}

// GetSummaries returns a run's summaries ordered by source name.
func (s *Store) GetSummaries(ctx context.Context, runID string) ([]corpus.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sums := s.summaries[runID]
	out := make([]corpus.Summary, len(sums))
	copy(out, sums)
	return out, nil
}

// SaveCoverage replaces one coverage table.
func (s *Store) SaveCoverage(ctx context.Context, runID string, table store.CoverageTable) error {
	entries := make([]freq.CoverageEntry, len(table.Entries))
	copy(entries, table.Entries)
	table.Entries = entries

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coverage[coverageKey{runID, table.Granularity, table.Threshold}] = table
	return nil
}

// GetCoverage loads one coverage table.
func (s *Store) GetCoverage(ctx context.Context, runID string, granularity int, threshold float64) (store.CoverageTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.coverage[coverageKey{runID, granularity, threshold}]
	if !ok {
		return store.CoverageTable{}, internalerr.ErrNotFound
	}
	entries := make([]freq.CoverageEntry, len(table.Entries))
	copy(entries, table.Entries)
	table.Entries = entries
	return table, nil
}
