package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/textutil"
	"seqtext/internal/vocab"
	"seqtext/internal/vocabstore"
)

var errNoVocabulary = errors.New("a vocabulary is required: pass --vocab FILE or --stored NAME")

// vocabSource selects a vocabulary either from a file or from the store.
type vocabSource struct {
	file   string
	stored string
}

func (s *vocabSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "vocab", "", "Vocabulary file (one token per line)")
	cmd.Flags().StringVar(&s.stored, "stored", "", "Name of a vocabulary in the store")
	cmd.MarkFlagsMutuallyExclusive("vocab", "stored")
}

func (s *vocabSource) set() bool {
	return strings.TrimSpace(s.file) != "" || strings.TrimSpace(s.stored) != ""
}

func (s *vocabSource) load(ctx context.Context, c *commandContext, cfg *config.Config) (vocab.Vocabulary, error) {
	if file := strings.TrimSpace(s.file); file != "" {
		return vocab.Load(file)
	}
	if name := strings.TrimSpace(s.stored); name != "" {
		var v vocab.Vocabulary
		err := c.withStore(ctx, cfg, func(store *vocabstore.Store) error {
			var err error
			v, err = store.Load(ctx, storeName(name))
			return err
		})
		return v, err
	}
	return nil, errNoVocabulary
}

// storeName maps a user supplied name onto the key used in the store.
func storeName(name string) string {
	return textutil.SanitizeToken(name)
}
