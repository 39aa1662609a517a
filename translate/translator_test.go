package translate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonwraymond/termdiscovery/glossary"
)

func testGlossary() glossary.Glossary {
	return glossary.Glossary{
		{SourceTerm: "máy học", TargetTerm: "machine learning"},
		{SourceTerm: "thuật toán", TargetTerm: "algorithm"},
		{SourceTerm: "mạng neural", TargetTerm: "neural network"},
	}
}

func TestTranslator_Translate(t *testing.T) {
	var gotPrompt string
	model := ModelFunc(func(_ context.Context, p string) (string, error) {
		gotPrompt = p
		return `{"translation": "The machine learning system uses algorithms", "alternatives": ["ML system"]}`, nil
	})
	tr := NewTranslator(StaticHandle(model), nil, Options{})

	res, err := tr.Translate(context.Background(), "Hệ thống máy học sử dụng thuật toán", testGlossary())
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if res.Translation.Text != "The machine learning system uses algorithms" {
		t.Errorf("Translation = %q", res.Translation.Text)
	}
	if len(res.Translation.Alternatives) != 1 {
		t.Errorf("Alternatives = %v", res.Translation.Alternatives)
	}
	if got := glossary.Glossary(res.Terms).SourceTerms(); len(got) != 2 || got[0] != "thuật toán" {
		t.Errorf("Terms = %v, want thuật toán then máy học", got)
	}
	if !strings.Contains(gotPrompt, "thuật toán = algorithm") || !strings.Contains(gotPrompt, "máy học = machine learning") {
		t.Errorf("prompt missing relevant terms:\n%s", gotPrompt)
	}
	if strings.Contains(gotPrompt, "neural network") {
		t.Errorf("prompt includes irrelevant term:\n%s", gotPrompt)
	}
	if res.Duration < 0 {
		t.Errorf("Duration = %v", res.Duration)
	}
}

func TestTranslator_PlainReply(t *testing.T) {
	model := ModelFunc(func(context.Context, string) (string, error) {
		return "  Hello world  ", nil
	})
	res, err := NewTranslator(StaticHandle(model), nil, Options{}).Translate(context.Background(), "Xin chào", nil)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.Translation.Text != "Hello world" || len(res.Translation.Alternatives) != 0 {
		t.Errorf("Translation = %#v", res.Translation)
	}
	if len(res.Terms) != 0 {
		t.Errorf("Terms = %v, want none", res.Terms)
	}
}

func TestTranslator_Errors(t *testing.T) {
	model := ModelFunc(func(context.Context, string) (string, error) { return "{}", nil })

	if _, err := NewTranslator(StaticHandle(model), nil, Options{}).Translate(context.Background(), "  ", nil); !errors.Is(err, ErrEmptyText) {
		t.Errorf("blank text error = %v, want ErrEmptyText", err)
	}
	if _, err := NewTranslator(nil, nil, Options{}).Translate(context.Background(), "Xin chào", nil); !errors.Is(err, ErrNoModel) {
		t.Errorf("nil handle error = %v, want ErrNoModel", err)
	}

	boom := errors.New("out of memory")
	failing := ModelFunc(func(context.Context, string) (string, error) { return "", boom })
	if _, err := NewTranslator(StaticHandle(failing), nil, Options{}).Translate(context.Background(), "Xin chào", nil); !errors.Is(err, boom) {
		t.Errorf("model error = %v, want wrapped %v", err, boom)
	}
}

func TestTranslator_ContextCanceled(t *testing.T) {
	model := ModelFunc(func(ctx context.Context, _ string) (string, error) {
		return "", ctx.Err()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTranslator(StaticHandle(model), nil, Options{}).Translate(ctx, "Xin chào", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestTranslator_Limit(t *testing.T) {
	var gotPrompt string
	model := ModelFunc(func(_ context.Context, p string) (string, error) {
		gotPrompt = p
		return "{}", nil
	})
	tr := NewTranslator(StaticHandle(model), nil, Options{Limit: 1})

	res, err := tr.Translate(context.Background(), "Hệ thống máy học sử dụng thuật toán", testGlossary())
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(res.Terms) != 1 {
		t.Fatalf("Terms = %v, want 1", res.Terms)
	}
	if strings.Contains(gotPrompt, "machine learning") {
		t.Errorf("prompt exceeds limit:\n%s", gotPrompt)
	}
}

func TestTranslator_ZeroThreshold(t *testing.T) {
	model := ModelFunc(func(context.Context, string) (string, error) { return "{}", nil })
	g := glossary.Glossary{
		{SourceTerm: "dữ liệu", TargetTerm: "data"},
		{SourceTerm: "mô hình", TargetTerm: "model"},
	}

	res, err := NewTranslator(StaticHandle(model), nil, Options{}).Translate(context.Background(), "dữ liệu lớn", g)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(res.Terms) != 1 {
		t.Errorf("default threshold Terms = %v, want 1", res.Terms)
	}

	zero := 0.0
	res, err = NewTranslator(StaticHandle(model), nil, Options{Threshold: &zero}).Translate(context.Background(), "dữ liệu lớn", g)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(res.Terms) != 2 {
		t.Errorf("zero threshold Terms = %v, want 2", res.Terms)
	}
}
