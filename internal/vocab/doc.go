// Package vocab maps tokens to integer ids and back.
//
// Special tokens (padding, decoder start, end-of-sequence, unknown) are never
// hardcoded at call sites: they travel in a Specials value, normally built
// from configuration, and Build reserves them at the lowest ids.
package vocab
