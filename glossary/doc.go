// Package glossary holds bilingual Vietnamese-English glossary entries and
// their persisted store.
//
// An [Entry] is keyed by its trimmed, case-sensitive SourceTerm. A
// [Glossary] is an ordered slice of entries; order is significant to
// ranking ties downstream, so every operation here preserves it.
//
// # Persistence
//
// [FileStore] keeps a glossary in a JSON file of records
//
//	[{"vn": "máy học", "en": "machine learning", "src": "ml-handbook"}]
//
// and merges additions by source term, last write wins:
//
//	store := glossary.NewFileStore("data/glossary.json", nil)
//	if err := store.Load(); err != nil {
//	    return err
//	}
//	n, err := store.Add(glossary.ParsePairs("máy học:machine learning,dữ liệu:data")...)
//
// Spreadsheets with "Vietnamese", "English" and optional "Source" header
// columns are imported with [ImportXLSX] or [FileStore.ImportXLSX].
//
// # Thread Safety
//
// FileStore is safe for concurrent use. Functions that take a Glossary never
// modify it.
package glossary
