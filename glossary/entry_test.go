package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	got := ParsePairs(" máy học : machine learning : ml-book, thuật toán:algorithm,broken, :empty")
	want := []Entry{
		{SourceTerm: "máy học", TargetTerm: "machine learning", Origin: "ml-book"},
		{SourceTerm: "thuật toán", TargetTerm: "algorithm"},
		{SourceTerm: "", TargetTerm: "empty"},
	}
	assert.Equal(t, want, got)
}

func TestParsePairs_Empty(t *testing.T) {
	assert.Empty(t, ParsePairs(""))
	assert.Empty(t, ParsePairs("no separator here"))
}

func TestEntry_Validate(t *testing.T) {
	require.NoError(t, Entry{SourceTerm: "dữ liệu"}.Validate())
	assert.ErrorIs(t, Entry{SourceTerm: "   "}.Validate(), ErrInvalidEntry)
}

func TestEntry_String(t *testing.T) {
	assert.Equal(t, "mô hình = model", Entry{SourceTerm: "mô hình", TargetTerm: "model"}.String())
}

func TestMerge_LastWriteWins(t *testing.T) {
	base := Glossary{
		{SourceTerm: "máy học", TargetTerm: "machine learning"},
		{SourceTerm: "dữ liệu", TargetTerm: "data"},
	}
	merged := Merge(base,
		Entry{SourceTerm: "dữ liệu", TargetTerm: "dataset", Origin: "v1"},
		Entry{SourceTerm: "mô hình", TargetTerm: "model"},
		Entry{SourceTerm: " dữ liệu ", TargetTerm: "data", Origin: "v2"},
	)

	assert.Equal(t, Glossary{
		{SourceTerm: "máy học", TargetTerm: "machine learning"},
		{SourceTerm: "dữ liệu", TargetTerm: "data", Origin: "v2"},
		{SourceTerm: "mô hình", TargetTerm: "model"},
	}, merged)

	// base is untouched
	assert.Equal(t, "data", base[1].TargetTerm)
	assert.Empty(t, base[1].Origin)
	assert.Len(t, base, 2)
}

func TestMerge_CaseSensitiveKey(t *testing.T) {
	merged := Merge(Glossary{{SourceTerm: "AI", TargetTerm: "AI"}}, Entry{SourceTerm: "ai", TargetTerm: "ai"})
	assert.Len(t, merged, 2)
}

func TestMerge_NilBase(t *testing.T) {
	merged := Merge(nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestGlossary_IndexAndSourceTerms(t *testing.T) {
	g := Glossary{
		{SourceTerm: "hệ thống"},
		{SourceTerm: "máy học"},
		{SourceTerm: "máy học", TargetTerm: "dup"},
	}
	assert.Equal(t, 1, g.Index("máy học"))
	assert.Equal(t, -1, g.Index("thuật toán"))
	assert.Equal(t, []string{"hệ thống", "máy học", "máy học"}, g.SourceTerms())
}

func TestFingerprint(t *testing.T) {
	a := Glossary{{SourceTerm: "a", TargetTerm: "b"}, {SourceTerm: "c", TargetTerm: "d"}}
	b := Glossary{{SourceTerm: "c", TargetTerm: "d"}, {SourceTerm: "a", TargetTerm: "b"}}
	c := Glossary{{SourceTerm: "a", TargetTerm: "b", Origin: "x"}, {SourceTerm: "c", TargetTerm: "d"}}
	// field boundaries matter: "ab"+"" differs from "a"+"b"
	d := Glossary{{SourceTerm: "ab"}, {SourceTerm: "c", TargetTerm: "d"}}

	assert.Equal(t, Fingerprint(a), Fingerprint(a.Clone()))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(d))
	assert.Len(t, Fingerprint(nil), 64)
}
