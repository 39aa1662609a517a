// Package prompt renders glossary entries and input text into the
// instruction sent to a translation model, and parses the model's reply.
//
// # Prompt Layout
//
// Build produces a single instruction that:
//   - asks for a Vietnamese to English translation
//   - requires numbers to be kept verbatim
//   - lists preferred translations as "source = target" lines
//   - asks for 2-3 short alternative technical translations
//   - requests a JSON object with the keys "translation" and "alternatives"
//
// Entries are rendered in the order given, normally the ranked order
// returned by the relevance package.
//
// # Parsing
//
// ParseTranslation extracts the first {...} block of a reply and decodes
// it. Replies without a decodable block are returned as plain text with no
// alternatives, so parsing never fails.
package prompt
