// Package lintcache persists lint results keyed by file path, so that
// unchanged files are not re-linted on every run.
package lintcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketResults = []byte("lint_results") // Path -> Entry
)

// Entry is one cached lint result.
type Entry struct {
	// Hash is the content fingerprint the result belongs to.
	Hash string `json:"hash"`

	// Keys is the number of keys walked.
	Keys int `json:"keys"`

	// MaxDepth is the deepest block nesting seen.
	MaxDepth int `json:"max_depth"`

	// Warnings is the number of warnings produced.
	Warnings int `json:"warnings"`

	// Error is the hard parse error, if any.
	Error string `json:"error,omitempty"`

	// CheckedAt is when the file was linted.
	CheckedAt time.Time `json:"checked_at"`
}

// Store caches lint results by path.
type Store interface {
	// Get returns the cached entry for path, or nil if none exists.
	Get(path string) (*Entry, error)

	// Put stores the entry for path, replacing any previous one.
	Put(path string, entry *Entry) error

	// Close releases the underlying storage.
	Close() error
}

// Fingerprint returns the content hash used in cache entries.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// boltStore implements Store using BoltDB.
type boltStore struct {
	db *bolt.DB
	mu sync.RWMutex
}

// Open opens (creating if needed) a bolt-backed store at path.
//
// Parameters:
//   - path: database file location; parent directories are created
//
// Returns:
//   - Configured Store
//   - Error if the database cannot be opened
func Open(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	store, err := NewBoltStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewBoltStore creates a BoltDB-based store on an existing database.
//
// Parameters:
//   - db: BoltDB database instance
//
// Returns:
//   - Configured Store
//   - Error if initialization fails
func NewBoltStore(db *bolt.DB) (Store, error) {
	// Initialize bucket.
	if err := db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(bucketResults)
		return createErr
	}); err != nil {
		return nil, fmt.Errorf("failed to create results bucket: %w", err)
	}

	return &boltStore{
		db: db,
	}, nil
}

// Get implements Store.Get.
func (s *boltStore) Get(path string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entry *Entry

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketResults)
		data := b.Get([]byte(path))

		if data == nil {
			// Not cached.
			return nil
		}

		entry = &Entry{}
		if unmarshalErr := json.Unmarshal(data, entry); unmarshalErr != nil {
			return fmt.Errorf("failed to unmarshal entry: %w", unmarshalErr)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Put implements Store.Put.
func (s *boltStore) Put(path string, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketResults)

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		if putErr := b.Put([]byte(path), data); putErr != nil {
			return fmt.Errorf("failed to store entry: %w", putErr)
		}

		return nil
	})
}

// Close implements Store.Close.
func (s *boltStore) Close() error {
	return s.db.Close()
}

// memoryStore implements Store using an in-memory map.
// Useful for testing.
type memoryStore struct {
	entries map[string]Entry
	mu      sync.RWMutex
}

// NewMemoryStore creates an in-memory store.
//
// Returns a configured Store.
// Useful for testing or when persistence is not needed.
func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]Entry),
	}
}

// Get implements Store.Get.
func (s *memoryStore) Get(path string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[path]
	if !exists {
		return nil, nil
	}

	return &entry, nil
}

// Put implements Store.Put.
func (s *memoryStore) Put(path string, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[path] = *entry
	return nil
}

// Close implements Store.Close.
func (s *memoryStore) Close() error {
	return nil
}
