package testsupport

import (
	"context"
	"testing"

	"seqtext/internal/config"
	"seqtext/internal/vocabstore"
)

// MustOpenStore opens a vocabstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *vocabstore.Store {
	t.Helper()

	store, err := vocabstore.Open(context.Background(), cfg.Store.Path)
	if err != nil {
		t.Fatalf("vocabstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
