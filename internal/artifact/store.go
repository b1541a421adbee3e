// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage
const (
	dataKeyPrefix = "artifact_data:"
	metaKeyPrefix = "artifact_meta:"
)

// Meta describes a cached artifact.
type Meta struct {
	Source       string    `json:"source"`
	SHA256       string    `json:"sha256"`
	Size         int       `json:"size"`
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Entry is a cached artifact and its metadata.
type Entry struct {
	Data []byte
	Meta Meta
}

// Verify checks the payload against the recorded checksum.
func (e *Entry) Verify() error {
	if got := checksum(e.Data); got != e.Meta.SHA256 {
		return fmt.Errorf("checksum mismatch: have %s, recorded %s", got, e.Meta.SHA256)
	}
	return nil
}

// Store is a BadgerDB-backed cache of downloaded artifacts. Payload and
// metadata live under separate keys and are written in one transaction.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) the cache at dir.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	// Artifacts are few and large
	opts.ValueLogFileSize = 256 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open artifact cache at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemoryStore opens a cache that lives only as long as the process.
func OpenInMemoryStore() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory artifact cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached artifact, or ErrNotCached.
func (s *Store) Get(name string) (*Entry, error) {
	var entry Entry

	err := s.db.View(func(txn *badger.Txn) error {
		metaItem, err := txn.Get([]byte(metaKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotCached
		}
		if err != nil {
			return fmt.Errorf("get meta: %w", err)
		}
		if err := metaItem.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry.Meta)
		}); err != nil {
			return fmt.Errorf("decode meta: %w", err)
		}

		dataItem, err := txn.Get([]byte(dataKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotCached
		}
		if err != nil {
			return fmt.Errorf("get data: %w", err)
		}
		entry.Data, err = dataItem.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Put stores data under name. Checksum and size are filled in from data.
func (s *Store) Put(name string, data []byte, meta Meta) error {
	meta.SHA256 = checksum(data)
	meta.Size = len(data)
	if meta.FetchedAt.IsZero() {
		meta.FetchedAt = time.Now().UTC()
	}

	encoded, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(dataKeyPrefix+name), data); err != nil {
			return fmt.Errorf("set data: %w", err)
		}
		if err := txn.Set([]byte(metaKeyPrefix+name), encoded); err != nil {
			return fmt.Errorf("set meta: %w", err)
		}
		return nil
	})
}

// Touch records a successful revalidation without rewriting the payload.
func (s *Store) Touch(name string, at time.Time) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotCached
		}
		if err != nil {
			return err
		}

		var meta Meta
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		}); err != nil {
			return fmt.Errorf("decode meta: %w", err)
		}
		meta.FetchedAt = at.UTC()

		encoded, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("marshal meta: %w", err)
		}
		return txn.Set([]byte(metaKeyPrefix+name), encoded)
	})
}

// Delete removes a cached artifact. Deleting a missing artifact is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(dataKeyPrefix + name)); err != nil {
			return err
		}
		return txn.Delete([]byte(metaKeyPrefix + name))
	})
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
