package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/internal/textfile"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/config"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/store"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/store/sqlite"
)

type report struct {
	RunID          string         `json:"run_id"`
	Seed           int64          `json:"seed"`
	SampleFraction float64        `json:"sample_fraction"`
	SampleLines    int            `json:"sample_lines"`
	Sources        []sourceJSON   `json:"sources"`
	Coverage       []coverageJSON `json:"coverage"`
}

type sourceJSON struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	Lines     int64  `json:"lines"`
	Chars     int64  `json:"chars"`
	Words     int64  `json:"words"`
}

type coverageJSON struct {
	Granularity    string      `json:"granularity"`
	Threshold      float64     `json:"threshold"`
	TotalTokens    int64       `json:"total_tokens"`
	DistinctTokens int         `json:"distinct_tokens"`
	CoverageSize   int         `json:"coverage_size"`
	TopTokens      []tokenJSON `json:"top_tokens"`
}

type tokenJSON struct {
	Token      string  `json:"token"`
	Count      int64   `json:"count"`
	Proportion float64 `json:"proportion"`
	Cumulative float64 `json:"cumulative"`
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to analysis YAML config (required)")
		dbPath     = flag.String("db", "", "Optional: SQLite database to persist results to")
		topN       = flag.Int("top", 20, "Number of top tokens to include per coverage set")
		workers    = flag.Int("workers", 0, "Counting parallelism (0 = NumCPU)")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	ctx := context.Background()

	cfg, err := config.LoadAnalysis(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	loader := config.Loader{
		StopwordsPath: cfg.StopwordsPath,
		ProfanityPath: cfg.ProfanityPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load word lists: %v", err)
	}

	corpora := make([]corpus.Corpus, 0, len(cfg.Sources))
	summaries := make([]corpus.Summary, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		c, sum, err := textfile.Load(src.Name, src.Path)
		if err != nil {
			log.Fatalf("load corpus: %v", err)
		}
		log.Printf("loaded %s: %d lines, %d words", src.Name, sum.Lines, sum.Words)
		corpora = append(corpora, c)
		summaries = append(summaries, sum)
	}

	pipeline, err := vocab.New(vocab.Options{
		SampleFraction:  cfg.SampleFraction,
		Seed:            cfg.Seed,
		Filter:          components.Filter,
		WordThresholds:  cfg.WordThresholds,
		PhraseThreshold: cfg.PhraseThreshold,
		Workers:         *workers,
	})
	if err != nil {
		log.Fatalf("configure pipeline: %v", err)
	}

	start := time.Now()
	result := pipeline.Analyze(corpora)
	log.Printf("analyzed %d sampled lines in %v", result.SampleLines, time.Since(start))

	runID := store.NewRunID()
	if *dbPath != "" {
		if err := persist(ctx, *dbPath, runID, cfg, summaries, result); err != nil {
			log.Fatalf("persist results: %v", err)
		}
		log.Printf("persisted run %s to %s", runID, *dbPath)
	}

	out, err := json.MarshalIndent(buildReport(runID, cfg, summaries, result, *topN), "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

func persist(ctx context.Context, path, runID string, cfg *config.Analysis, summaries []corpus.Summary, result vocab.Result) error {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	run := store.Run{
		ID:             runID,
		CreatedAt:      time.Now().UTC(),
		Seed:           cfg.Seed,
		SampleFraction: cfg.SampleFraction,
	}
	if err := db.SaveRun(ctx, run); err != nil {
		return err
	}
	if err := db.SaveSummaries(ctx, runID, summaries); err != nil {
		return err
	}
	for _, cov := range result.Coverage {
		table := store.CoverageTable{
			Granularity:    int(cov.Granularity),
			Threshold:      cov.Threshold,
			TotalTokens:    cov.TotalTokens,
			DistinctTokens: cov.Size(),
			Entries:        cov.Entries,
		}
		if err := db.SaveCoverage(ctx, runID, table); err != nil {
			return err
		}
	}
	return nil
}

func buildReport(runID string, cfg *config.Analysis, summaries []corpus.Summary, result vocab.Result, topN int) report {
	rep := report{
		RunID:          runID,
		Seed:           cfg.Seed,
		SampleFraction: cfg.SampleFraction,
		SampleLines:    result.SampleLines,
	}
	for _, sum := range summaries {
		rep.Sources = append(rep.Sources, sourceJSON{
			Name:      sum.Source,
			SizeBytes: sum.SizeBytes,
			Lines:     sum.Lines,
			Chars:     sum.Chars,
			Words:     sum.Words,
		})
	}
	for _, cov := range result.Coverage {
		cj := coverageJSON{
			Granularity:    cov.Granularity.String(),
			Threshold:      cov.Threshold,
			TotalTokens:    cov.TotalTokens,
			DistinctTokens: cov.DistinctTokens,
			CoverageSize:   cov.Size(),
		}
		top := cov.Entries
		if topN > 0 && len(top) > topN {
			top = top[:topN]
		}
		for _, e := range top {
			cj.TopTokens = append(cj.TopTokens, tokenJSON{
				Token:      e.Token,
				Count:      e.Count,
				Proportion: e.Proportion,
				Cumulative: e.Cumulative,
			})
		}
		rep.Coverage = append(rep.Coverage, cj)
	}
	return rep
}
