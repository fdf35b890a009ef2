package store

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/freq"
)

// Store persists analysis runs: which corpus was analyzed with which
// settings, the per-source summaries, and the coverage tables.
type Store interface {
	Close() error

	// Runs
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context) ([]Run, error)

	// Per-source corpus summaries
	SaveSummaries(ctx context.Context, runID string, sums []corpus.Summary) error
	GetSummaries(ctx context.Context, runID string) ([]corpus.Summary, error)

	// Coverage tables
	SaveCoverage(ctx context.Context, runID string, table CoverageTable) error
	GetCoverage(ctx context.Context, runID string, granularity int, threshold float64) (CoverageTable, error)
}

// Run identifies one analysis execution and the settings that make it
// reproducible.
type Run struct {
	ID             string
	CreatedAt      time.Time
	Seed           int64
	SampleFraction float64
}

// CoverageTable is one persisted coverage set: the granularity and
// threshold it was computed for, the population it came from, and the
// ranked entries in their deterministic order.
type CoverageTable struct {
	Granularity    int
	Threshold      float64
	TotalTokens    int64
	DistinctTokens int
	Entries        []freq.CoverageEntry
}

// NewRunID returns a fresh ULID for a run. ULIDs sort by creation
// time, which keeps run listings chronological for free.
func NewRunID() string {
	return ulid.Make().String()
}
