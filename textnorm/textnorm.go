// Package textnorm folds text into the canonical form used for comparing
// Vietnamese glossary terms against input sentences.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s in NFC form and lower case, so decomposed tone marks
// compare equal to their precomposed letters.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// FoldTrim folds s and strips surrounding whitespace.
func FoldTrim(s string) string {
	return strings.TrimSpace(Fold(s))
}

// IsBlank reports whether s holds only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
