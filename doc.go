// Package bytepair learns byte-pair-encoding subword vocabularies from text
// corpora and segments new text with the learned merge rules.
//
// The root package is the document-level pipeline: it ingests corpora,
// segments text into words, trains via the tokenizer package and encodes
// whole documents. The tokenizer package holds the core algorithm and the
// persisted model format.
package bytepair
