package glossary

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a stable hash of the glossary. It changes whenever an
// entry is added, removed, reordered or edited.
func Fingerprint(g Glossary) string {
	h := sha256.New()

	for _, e := range g {
		h.Write([]byte(e.SourceTerm))
		h.Write([]byte{0}) // separator
		h.Write([]byte(e.TargetTerm))
		h.Write([]byte{0})
		h.Write([]byte(e.Origin))
		h.Write([]byte{1}) // end of entry
	}

	return hex.EncodeToString(h.Sum(nil))
}
