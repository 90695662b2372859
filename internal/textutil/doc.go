// Package textutil provides token-level helpers for case folding, similarity
// scoring, and name sanitization.
//
// Fingerprints are term-frequency vectors built from already tokenized
// sentences. Two fingerprints are compared with cosine similarity, and whole
// corpora are compared line by line with CorpusSimilarity.
package textutil
