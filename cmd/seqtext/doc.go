// Package main hosts the seqtext CLI entrypoint and command graph.
//
// The Cobra-based command tree wraps the corpus, vocabulary, and logits
// helpers so token files can be encoded, decoded, inspected, and compared
// from a shell. Configuration resolution, run identifiers, and logger setup
// live in commandContext so subcommands only describe their own flags and
// output.
package main
