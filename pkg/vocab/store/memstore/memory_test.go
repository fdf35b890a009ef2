package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/freq"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/store"
)

func TestRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	run := store.Run{
		ID:             store.NewRunID(),
		CreatedAt:      time.Now().UTC(),
		Seed:           42,
		SampleFraction: 0.1,
	}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Seed != 42 || got.SampleFraction != 0.1 {
		t.Errorf("run round trip = %+v", got)
	}

	if _, err := s.GetRun(ctx, "missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSummariesSortedBySource(t *testing.T) {
	ctx := context.Background()
	s := New()

	sums := []corpus.Summary{
		{Source: "twitter", Lines: 30},
		{Source: "blogs", Lines: 10},
		{Source: "news", Lines: 20},
	}
	if err := s.SaveSummaries(ctx, "run1", sums); err != nil {
		t.Fatalf("SaveSummaries: %v", err)
	}

	got, err := s.GetSummaries(ctx, "run1")
	if err != nil {
		t.Fatalf("GetSummaries: %v", err)
	}
	if len(got) != 3 || got[0].Source != "blogs" || got[2].Source != "twitter" {
		t.Errorf("summaries = %+v", got)
	}
}

func TestCoverageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	table := store.CoverageTable{
		Granularity:    1,
		Threshold:      0.5,
		TotalTokens:    4,
		DistinctTokens: 1,
		Entries: []freq.CoverageEntry{
			{Token: "a", Count: 2, Proportion: 0.5, Cumulative: 0.5},
		},
	}
	if err := s.SaveCoverage(ctx, "run1", table); err != nil {
		t.Fatalf("SaveCoverage: %v", err)
	}

	got, err := s.GetCoverage(ctx, "run1", 1, 0.5)
	if err != nil {
		t.Fatalf("GetCoverage: %v", err)
	}
	if got.DistinctTokens != 1 || len(got.Entries) != 1 || got.Entries[0].Token != "a" {
		t.Errorf("coverage round trip = %+v", got)
	}

	if _, err := s.GetCoverage(ctx, "run1", 2, 0.9); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
