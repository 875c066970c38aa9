package lintcache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	boltStore, err := Open(filepath.Join(t.TempDir(), "cache", "lint.db"))
	require.NoError(t, err)
	t.Cleanup(func() { boltStore.Close() })

	memStore := NewMemoryStore()
	t.Cleanup(func() { memStore.Close() })

	return map[string]Store{
		"bolt":   boltStore,
		"memory": memStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			entry := &Entry{
				Hash:      Fingerprint([]byte("title: x\n")),
				Warnings:  2,
				Error:     "",
				CheckedAt: time.Now().UTC().Truncate(time.Second),
			}
			require.NoError(t, store.Put("/sets/test.mse-set", entry))

			got, err := store.Get("/sets/test.mse-set")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, entry.Hash, got.Hash)
			assert.Equal(t, 2, got.Warnings)
			assert.True(t, entry.CheckedAt.Equal(got.CheckedAt))
		})
	}
}

func TestStoreMissReturnsNil(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := store.Get("/never/seen")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put("p", &Entry{Hash: "a", Warnings: 1}))
			require.NoError(t, store.Put("p", &Entry{Hash: "b", Warnings: 0}))

			got, err := store.Get("p")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "b", got.Hash)
			assert.Equal(t, 0, got.Warnings)
		})
	}
}

func TestFingerprintIsStable(t *testing.T) {
	a := Fingerprint([]byte("same content"))
	b := Fingerprint([]byte("same content"))
	c := Fingerprint([]byte("other content"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
