// Package corpus loads, transforms, and writes whitespace-tokenized text.
//
// A Corpus is an ordered list of Sentences, one per line of a source file.
// Every transformation here returns fresh slices and leaves its input
// untouched:
//   - Load/Read split each line on whitespace runs
//   - Write/WriteWith join tokens with single spaces, one line per sentence
//   - StripEOS cuts each sentence at its first end-of-sequence marker
//   - Makeup cyclically repeats a slice to an exact length
//   - Reorder scatters values back through a validated permutation
//   - SortByLength and Batches prepare length-bucketed, fixed-size batches
//
// Failures wrap ErrFileAccess or ErrDomain so callers can branch with
// errors.Is.
package corpus
