// CourseMate - Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursemate

package artifact

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// putRaw writes an entry without recomputing its checksum.
func putRaw(s *Store, name string, entry *Entry) error {
	encoded, err := json.Marshal(entry.Meta)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(dataKeyPrefix+name), entry.Data); err != nil {
			return err
		}
		return txn.Set([]byte(metaKeyPrefix+name), encoded)
	})
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }
