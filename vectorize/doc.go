// Package vectorize builds TF-IDF vector spaces over small corpora of
// glossary terms and query sentences.
//
// A [Space] is built from scratch for every call to [Vectorize]. Rows are
// only comparable with rows of the same Space: the vocabulary and the IDF
// statistics both depend on the whole corpus.
//
// # Terms
//
// Text is segmented on Unicode word boundaries by a Bleve analyzer, lower
// cased, and tokens shorter than two runes are dropped. Terms are the
// surviving tokens (unigrams) plus every pair of adjacent tokens (bigrams)
// joined by a single space:
//
//	"Hệ thống máy học" -> hệ, thống, máy, học, hệ thống, thống máy, máy học
//
// No stop words are removed.
//
// # Weights
//
// The vocabulary keeps at most [Options.MaxFeatures] terms, preferring the
// highest corpus-wide counts and breaking ties by term in ascending byte
// order. Columns are numbered in ascending term order.
//
// A cell holds count(term, doc) * idf(term) with the smoothed
//
//	idf(term) = ln((1 + n) / (1 + df(term))) + 1
//
// and every row is scaled to unit L2 norm.
//
// # Failure
//
// Vectorize never panics. A corpus with no documents, or whose documents
// yield no terms at all, produces a [Result] whose Err is an [*Error]
// wrapping [ErrEmptyCorpus] or [ErrEmptyVocabulary]:
//
//	res := vectorize.Vectorize(texts, vectorize.Options{})
//	if !res.OK() {
//	    // fall back to a method that does not need vectors
//	}
package vectorize
