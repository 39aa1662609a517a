package glossary

import (
	"fmt"
	"strings"
)

// Entry is one Vietnamese source term with its preferred English rendering.
type Entry struct {
	// SourceTerm is the Vietnamese term and the entry's identity key.
	SourceTerm string `json:"vn"`
	// TargetTerm is the preferred English translation.
	TargetTerm string `json:"en"`
	// Origin optionally records where the pairing came from. Empty when
	// unknown.
	Origin string `json:"src"`
}

// Key returns the identity key of the entry.
func (e Entry) Key() string {
	return strings.TrimSpace(e.SourceTerm)
}

// Normalized returns a copy with every field trimmed.
func (e Entry) Normalized() Entry {
	return Entry{
		SourceTerm: strings.TrimSpace(e.SourceTerm),
		TargetTerm: strings.TrimSpace(e.TargetTerm),
		Origin:     strings.TrimSpace(e.Origin),
	}
}

// Validate reports ErrInvalidEntry when the entry has no source term.
func (e Entry) Validate() error {
	if e.Key() == "" {
		return fmt.Errorf("%w: empty source term", ErrInvalidEntry)
	}
	return nil
}

// String renders the entry as "source = target".
func (e Entry) String() string {
	return e.SourceTerm + " = " + e.TargetTerm
}

// Glossary is an ordered list of entries.
type Glossary []Entry

// SourceTerms returns the source term of every entry, in order.
func (g Glossary) SourceTerms() []string {
	out := make([]string, len(g))
	for i, e := range g {
		out[i] = e.SourceTerm
	}
	return out
}

// Index returns the position of the first entry with the given key, or -1.
func (g Glossary) Index(source string) int {
	key := strings.TrimSpace(source)
	for i, e := range g {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

// Clone returns a copy of g that shares no backing array with it.
func (g Glossary) Clone() Glossary {
	if g == nil {
		return nil
	}
	out := make(Glossary, len(g))
	copy(out, g)
	return out
}

// ParsePairs parses a comma separated list of "vn:en[:src]" items. Items
// with fewer than two parts are skipped; parts are trimmed.
func ParsePairs(s string) []Entry {
	var out []Entry
	for _, item := range strings.Split(s, ",") {
		parts := strings.Split(item, ":")
		if len(parts) < 2 {
			continue
		}
		e := Entry{
			SourceTerm: parts[0],
			TargetTerm: parts[1],
		}
		if len(parts) > 2 {
			e.Origin = parts[2]
		}
		out = append(out, e.Normalized())
	}
	return out
}

// Merge returns base with updates applied by source term. An update whose
// key already exists replaces the target and origin of the first matching
// entry in place; new keys are appended in update order. Later updates win.
// Neither argument is modified.
func Merge(base Glossary, updates ...Entry) Glossary {
	out := base.Clone()
	if out == nil {
		out = Glossary{}
	}
	for _, u := range updates {
		u = u.Normalized()
		if i := out.Index(u.SourceTerm); i >= 0 {
			out[i].TargetTerm = u.TargetTerm
			out[i].Origin = u.Origin
			continue
		}
		out = append(out, u)
	}
	return out
}
