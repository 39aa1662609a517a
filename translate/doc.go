// Package translate turns Vietnamese text into English with a language
// model, steering it with the glossary entries relevant to the text.
//
// A Translator ranks glossary entries with a relevance.Scorer, builds the
// instruction with the prompt package, calls the Model held by a Handle and
// parses the reply into a prompt.Translation.
//
// # Model Lifecycle
//
// Models are expensive to construct, so a Handle builds its Model lazily on
// first use and keeps it for later calls. A failed construction is returned
// to the caller and retried on the next call. Handles are owned by whoever
// creates them; the package keeps no global model.
//
// # Error Handling
//
//   - ErrNoModel: no Handle or no factory was supplied
//   - ErrEmptyText: the text to translate is blank
//   - ErrMissingAPIKey: an Anthropic model was configured without a key
//
// Model failures are wrapped and returned; check with errors.Is.
package translate
