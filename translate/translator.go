package translate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonwraymond/termdiscovery/glossary"
	"github.com/jonwraymond/termdiscovery/prompt"
	"github.com/jonwraymond/termdiscovery/relevance"
	"github.com/jonwraymond/termdiscovery/textnorm"
)

// Options configures a Translator.
type Options struct {
	// Threshold is the minimum relevance for a glossary entry to be
	// offered to the model. If nil, uses relevance.DefaultThreshold; zero
	// offers every scored entry.
	Threshold *float64

	// Limit caps the entries offered to the model. If <= 0, uses
	// relevance.DefaultLimit.
	Limit int

	// Logger receives per-call records. If nil, uses slog.Default().
	Logger *slog.Logger
}

// Result is the outcome of one translation.
type Result struct {
	Source      string             `json:"source"`
	Translation prompt.Translation `json:"result"`
	Terms       []glossary.Entry   `json:"terms"`
	Raw         string             `json:"raw"`
	Duration    time.Duration      `json:"duration"`
}

// Translator translates text with glossary guidance.
type Translator struct {
	handle    *Handle
	scorer    *relevance.Scorer
	threshold float64
	limit     int
	logger    *slog.Logger
}

// NewTranslator creates a Translator using the model held by h. If scorer
// is nil, a default relevance.Scorer is used.
func NewTranslator(h *Handle, scorer *relevance.Scorer, opts Options) *Translator {
	t := &Translator{
		handle:    h,
		scorer:    scorer,
		threshold: relevance.DefaultThreshold,
		limit:     opts.Limit,
		logger:    opts.Logger,
	}
	if t.scorer == nil {
		t.scorer = relevance.NewScorer(relevance.Options{})
	}
	if opts.Threshold != nil {
		t.threshold = *opts.Threshold
	}
	if t.limit <= 0 {
		t.limit = relevance.DefaultLimit
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Translate translates text, offering the model the entries of g relevant
// to it.
func (t *Translator) Translate(ctx context.Context, text string, g glossary.Glossary) (*Result, error) {
	if textnorm.IsBlank(text) {
		return nil, ErrEmptyText
	}

	model, err := t.handle.Get(ctx)
	if err != nil {
		return nil, err
	}

	terms := t.scorer.Extract(text, g, t.threshold, t.limit)
	instruction := prompt.Build(text, terms)

	start := time.Now()
	raw, err := model.Complete(ctx, instruction)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	t.logger.Info("translation completed",
		"terms", len(terms),
		"duration", elapsed)

	return &Result{
		Source:      text,
		Translation: prompt.ParseTranslation(raw),
		Terms:       terms,
		Raw:         raw,
		Duration:    elapsed,
	}, nil
}
