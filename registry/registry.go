package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/termdiscovery/glossary"
	"github.com/jonwraymond/termdiscovery/relevance"
	"github.com/jonwraymond/termdiscovery/textnorm"
	"github.com/jonwraymond/termdiscovery/translate"
)

// DefaultSuggestions is the number of suggestions lookup_term returns on a
// miss when the request does not ask for a count.
const DefaultSuggestions = 5

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo

	// Store holds the glossary. Required.
	Store glossary.Store

	// Scorer ranks entries. If nil, a default relevance.Scorer is used.
	Scorer *relevance.Scorer

	// Translator enables the translate tool when non-nil.
	Translator *translate.Translator

	// Threshold is used when a request omits one. If nil, uses
	// relevance.DefaultThreshold.
	Threshold *float64

	// FallbackThreshold is used for simple requests that omit a threshold.
	// If nil, uses relevance.FallbackThreshold.
	FallbackThreshold *float64

	// Limit is used when a request omits one. If <= 0, uses
	// relevance.DefaultLimit.
	Limit int

	// Logger is shared with the MCP server. If nil, uses slog.Default().
	Logger *slog.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Suggester is implemented by stores that can propose near-miss source
// terms, such as glossary.FileStore.
type Suggester interface {
	Suggest(term string, n int) []string
}

// Registry serves glossary tools over MCP.
type Registry struct {
	config     Config
	store      glossary.Store
	scorer     *relevance.Scorer
	translator *translate.Translator
	logger     *slog.Logger
	threshold  float64
	fallback   float64

	server *mcp.Server
	tools  []string
	calls  map[string]*atomic.Uint64
	errors atomic.Uint64
}

// New creates a Registry and registers its tools.
func New(cfg Config) (*Registry, error) {
	if cfg.Store == nil {
		return nil, ErrNoStore
	}
	if cfg.ServerInfo.Name == "" {
		cfg.ServerInfo.Name = "termdiscovery"
	}
	if cfg.ServerInfo.Version == "" {
		cfg.ServerInfo.Version = "dev"
	}
	threshold, fallback := relevance.DefaultThreshold, relevance.FallbackThreshold
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	if cfg.FallbackThreshold != nil {
		fallback = *cfg.FallbackThreshold
	}
	if cfg.Limit <= 0 {
		cfg.Limit = relevance.DefaultLimit
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	r := &Registry{
		config:     cfg,
		store:      cfg.Store,
		scorer:     cfg.Scorer,
		translator: cfg.Translator,
		logger:     cfg.Logger,
		threshold:  threshold,
		fallback:   fallback,
		calls:      make(map[string]*atomic.Uint64),
	}
	if r.scorer == nil {
		r.scorer = relevance.NewScorer(relevance.Options{Logger: cfg.Logger})
	}

	r.server = mcp.NewServer(&mcp.Implementation{
		Name:    cfg.ServerInfo.Name,
		Version: cfg.ServerInfo.Version,
	}, &mcp.ServerOptions{Logger: cfg.Logger})
	r.registerTools()

	return r, nil
}

// Server returns the underlying MCP server.
func (r *Registry) Server() *mcp.Server {
	return r.server
}

// Tools returns the names of the registered tools.
func (r *Registry) Tools() []string {
	out := make([]string, len(r.tools))
	copy(out, r.tools)
	return out
}

// Extract ranks glossary entries against in.Text.
func (r *Registry) Extract(_ context.Context, in ExtractInput) (ExtractOutput, error) {
	threshold := r.threshold
	if in.Simple {
		threshold = r.fallback
	}
	if in.Threshold != nil {
		threshold = *in.Threshold
	}
	if threshold < 0 || threshold > 1 {
		return ExtractOutput{}, fmt.Errorf("%w: threshold %v not in [0, 1]", ErrInvalidRequest, threshold)
	}
	if in.Limit < 0 {
		return ExtractOutput{}, fmt.Errorf("%w: negative limit %d", ErrInvalidRequest, in.Limit)
	}
	limit := in.Limit
	if limit == 0 {
		limit = r.config.Limit
	}

	g := r.store.Entries()
	var results relevance.Results
	if in.Simple {
		results = r.scorer.ScoreSimple(in.Text, g, threshold, limit)
	} else {
		results = r.scorer.Score(in.Text, g, threshold, limit)
	}

	terms := make([]Term, len(results))
	for i, res := range results {
		terms[i] = termFromResult(res)
	}
	return ExtractOutput{Terms: terms}, nil
}

// Lookup returns the entry for in.Source, or suggestions when there is
// none.
func (r *Registry) Lookup(_ context.Context, in LookupInput) (LookupOutput, error) {
	source := strings.TrimSpace(in.Source)
	if source == "" {
		return LookupOutput{}, fmt.Errorf("%w: source is required", ErrInvalidRequest)
	}

	e, err := r.store.Lookup(source)
	if err == nil {
		return LookupOutput{Found: true, Entry: e, Suggestions: []string{}}, nil
	}

	out := LookupOutput{Suggestions: []string{}}
	if s, ok := r.store.(Suggester); ok {
		n := in.Suggestions
		if n <= 0 {
			n = DefaultSuggestions
		}
		if got := s.Suggest(source, n); got != nil {
			out.Suggestions = got
		}
	}
	return out, nil
}

// Add merges pairs and entries into the store.
func (r *Registry) Add(_ context.Context, in AddInput) (AddOutput, error) {
	entries := glossary.ParsePairs(in.Pairs)
	entries = append(entries, in.Entries...)
	if len(entries) == 0 {
		return AddOutput{}, fmt.Errorf("%w: no terms given", ErrInvalidRequest)
	}

	n, err := r.store.Add(entries...)
	if err != nil {
		return AddOutput{}, err
	}
	r.logger.Info("glossary terms added", "count", n)
	return AddOutput{Added: n, Total: len(r.store.Entries())}, nil
}

// Translate translates in.Text with the configured Translator.
func (r *Registry) Translate(ctx context.Context, in TranslateInput) (TranslateOutput, error) {
	if r.translator == nil {
		return TranslateOutput{}, ErrNoTranslator
	}
	if textnorm.IsBlank(in.Text) {
		return TranslateOutput{}, fmt.Errorf("%w: text is required", ErrInvalidRequest)
	}

	res, err := r.translator.Translate(ctx, in.Text, r.store.Entries())
	if err != nil {
		return TranslateOutput{}, err
	}

	alternatives := res.Translation.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}
	terms := res.Terms
	if terms == nil {
		terms = []glossary.Entry{}
	}
	return TranslateOutput{
		Translation:  res.Translation.Text,
		Alternatives: alternatives,
		Terms:        terms,
		DurationMS:   res.Duration.Milliseconds(),
	}, nil
}

// RegistryStats reports usage counters.
type RegistryStats struct {
	Entries int
	Tools   int
	Calls   map[string]uint64
	Errors  uint64
}

// Stats returns registry statistics.
func (r *Registry) Stats() RegistryStats {
	calls := make(map[string]uint64, len(r.calls))
	for name, c := range r.calls {
		calls[name] = c.Load()
	}
	return RegistryStats{
		Entries: len(r.store.Entries()),
		Tools:   len(r.tools),
		Calls:   calls,
		Errors:  r.errors.Load(),
	}
}
