package prompt

import (
	"strings"

	"github.com/jonwraymond/termdiscovery/glossary"
)

// RenderGlossary renders entries as "source = target" lines.
func RenderGlossary(entries []glossary.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.SourceTerm)
		b.WriteString(" = ")
		b.WriteString(e.TargetTerm)
	}
	return b.String()
}

// Build returns the translation instruction for text, listing entries as
// preferred translations.
func Build(text string, entries []glossary.Entry) string {
	var b strings.Builder
	b.WriteString("Translate the following Vietnamese sentence to English.\n")
	b.WriteString("Pay attention to numbers in the text, they should be kept as is.\n")
	if len(entries) > 0 {
		b.WriteString("Use these preferred translations if these terms appear in the text:\n")
		b.WriteString(RenderGlossary(entries))
		b.WriteByte('\n')
	}
	b.WriteString("\nVietnamese: ")
	b.WriteString(text)
	b.WriteString("\n\nThen suggest 2-3 very short alternative technical translations.\n")
	b.WriteString("Return result in JSON format with two keys only 'translation' and 'alternatives'.")
	return b.String()
}
