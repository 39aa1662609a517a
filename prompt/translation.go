package prompt

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Translation is a parsed model reply.
type Translation struct {
	Text         string   `json:"translation"`
	Alternatives []string `json:"alternatives"`
}

var objectPattern = regexp.MustCompile(`(?s)\{.*?\}`)

// ParseTranslation decodes the first {...} block of raw. When no block is
// present or it does not decode, the trimmed reply becomes the translation
// and Alternatives is empty.
func ParseTranslation(raw string) Translation {
	if block := objectPattern.FindString(raw); block != "" {
		var t Translation
		if err := json.Unmarshal([]byte(block), &t); err == nil {
			if t.Alternatives == nil {
				t.Alternatives = []string{}
			}
			return t
		}
	}
	return Translation{
		Text:         strings.TrimSpace(raw),
		Alternatives: []string{},
	}
}
