package config

import (
	"errors"
	"testing"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
)

func TestLoaderLoad(t *testing.T) {
	loader := Loader{
		StopwordsPath: writeFile(t, "stopwords.yaml", "terms:\n  - the\n  - a\n"),
		ProfanityPath: writeFile(t, "profanity.yaml", "terms:\n  - darn\n"),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !comp.Stopwords.Contains("the") {
		t.Error("stopword set missing 'the'")
	}
	if !comp.Profanity.Contains("darn") {
		t.Error("profanity set missing 'darn'")
	}
	if comp.Filter == nil {
		t.Fatal("filter not constructed")
	}
}

func TestLoaderMissingListIsFatal(t *testing.T) {
	// An absent exclusion list must surface as a config error, never as
	// an empty set the filter silently runs with.
	loader := Loader{StopwordsPath: "", ProfanityPath: ""}
	if _, err := loader.Load(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	loader = Loader{
		StopwordsPath: writeFile(t, "stopwords.yaml", "terms: [the]\n"),
		ProfanityPath: "/nonexistent/profanity.yaml",
	}
	if _, err := loader.Load(); err == nil {
		t.Error("expected error for unreadable profanity list")
	}
}
