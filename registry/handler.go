package registry

import (
	"context"
	"sync/atomic"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/termdiscovery/glossary"
	"github.com/jonwraymond/termdiscovery/relevance"
)

// Tool names.
const (
	ToolExtract   = "extract_relevant_terms"
	ToolLookup    = "lookup_term"
	ToolAdd       = "add_terms"
	ToolTranslate = "translate"
)

// ExtractInput is the extract_relevant_terms request.
type ExtractInput struct {
	Text      string   `json:"text" jsonschema:"Vietnamese text to find glossary terms for"`
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"minimum relevance score between 0 and 1"`
	Limit     int      `json:"limit,omitempty" jsonschema:"maximum number of terms to return"`
	Simple    bool     `json:"simple,omitempty" jsonschema:"score with exact and lexical matching only"`
}

// Term is one ranked glossary entry.
type Term struct {
	Source    string  `json:"source"`
	Target    string  `json:"target"`
	Origin    string  `json:"origin"`
	Score     float64 `json:"score"`
	ScoreType string  `json:"score_type"`
}

// ExtractOutput is the extract_relevant_terms response.
type ExtractOutput struct {
	Terms []Term `json:"terms"`
}

// Entries converts the terms back into glossary entries.
func (o ExtractOutput) Entries() []glossary.Entry {
	out := make([]glossary.Entry, len(o.Terms))
	for i, t := range o.Terms {
		out[i] = glossary.Entry{SourceTerm: t.Source, TargetTerm: t.Target, Origin: t.Origin}
	}
	return out
}

// LookupInput is the lookup_term request.
type LookupInput struct {
	Source      string `json:"source" jsonschema:"source term to look up"`
	Suggestions int    `json:"suggestions,omitempty" jsonschema:"number of near matches to suggest on a miss"`
}

// LookupOutput is the lookup_term response.
type LookupOutput struct {
	Found       bool           `json:"found"`
	Entry       glossary.Entry `json:"entry"`
	Suggestions []string       `json:"suggestions"`
}

// AddInput is the add_terms request.
type AddInput struct {
	Pairs   string           `json:"pairs,omitempty" jsonschema:"comma separated vn:en or vn:en:source pairs"`
	Entries []glossary.Entry `json:"entries,omitempty" jsonschema:"entries to merge"`
}

// AddOutput is the add_terms response.
type AddOutput struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// TranslateInput is the translate request.
type TranslateInput struct {
	Text string `json:"text" jsonschema:"Vietnamese text to translate"`
}

// TranslateOutput is the translate response.
type TranslateOutput struct {
	Translation  string           `json:"translation"`
	Alternatives []string         `json:"alternatives"`
	Terms        []glossary.Entry `json:"terms"`
	DurationMS   int64            `json:"duration_ms"`
}

func termFromResult(r relevance.Result) Term {
	return Term{
		Source:    r.Entry.SourceTerm,
		Target:    r.Entry.TargetTerm,
		Origin:    r.Entry.Origin,
		Score:     r.Score,
		ScoreType: string(r.ScoreType),
	}
}

func (r *Registry) registerTools() {
	addTool(r, &mcp.Tool{
		Name:        ToolExtract,
		Description: "Rank glossary entries by relevance to a Vietnamese text, best first.",
	}, r.Extract)
	addTool(r, &mcp.Tool{
		Name:        ToolLookup,
		Description: "Look up a glossary entry by its source term, suggesting close terms on a miss.",
	}, r.Lookup)
	addTool(r, &mcp.Tool{
		Name:        ToolAdd,
		Description: "Merge terms into the glossary. Existing source terms are overwritten.",
	}, r.Add)
	if r.translator != nil {
		addTool(r, &mcp.Tool{
			Name:        ToolTranslate,
			Description: "Translate Vietnamese text to English using the relevant glossary terms.",
		}, r.Translate)
	}
}

// addTool registers fn as a typed tool handler with call accounting.
func addTool[In, Out any](r *Registry, tool *mcp.Tool, fn func(context.Context, In) (Out, error)) {
	counter := new(atomic.Uint64)
	r.calls[tool.Name] = counter
	r.tools = append(r.tools, tool.Name)

	mcp.AddTool(r.server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		counter.Add(1)
		out, err := fn(ctx, in)
		if err != nil {
			r.errors.Add(1)
			r.logger.Warn("tool call failed", "tool", tool.Name, "error", err)
			var zero Out
			return nil, zero, err
		}
		r.logger.Debug("tool call", "tool", tool.Name)
		return nil, out, nil
	})
}
