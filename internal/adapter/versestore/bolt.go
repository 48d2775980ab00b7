// Package versestore provides persistent verse storage keyed by
// (version, book, chapter). The bolt store is the default backend; the
// sqlite store is interchangeable through configuration.
package versestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

var (
	bucketVerses   = []byte("verses")
	bucketVersions = []byte("versions")
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketVerses, bucketVersions} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type versionMeta struct {
	UpdatedAt int64 `json:"updated_at"`
}

// chapterKey is zero-padded so a cursor scan over one version's prefix walks
// chapters in canonical order.
func chapterKey(versionID string, bookID, chapter int) []byte {
	return []byte(fmt.Sprintf("%s/%03d/%03d", versionID, bookID, chapter))
}

func versionPrefix(versionID string) []byte {
	return []byte(versionID + "/")
}

func (s *BoltStore) GetVerses(ctx context.Context, versionID string, bookID, chapter int) ([]domain.Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var verses []domain.Verse
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketVerses).Get(chapterKey(versionID, bookID, chapter))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &verses)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %d:%d: %w", versionID, bookID, chapter, err)
	}
	return verses, nil
}

func (s *BoltStore) PutVerses(ctx context.Context, versionID string, bookID, chapter int, verses []domain.Verse) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ordered := make([]domain.Verse, len(verses))
	copy(ordered, verses)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	data, err := json.Marshal(ordered)
	if err != nil {
		return err
	}
	meta, err := json.Marshal(versionMeta{UpdatedAt: time.Now().Unix()})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketVerses).Put(chapterKey(versionID, bookID, chapter), data); err != nil {
			return err
		}
		return tx.Bucket(bucketVersions).Put([]byte(versionID), meta)
	})
}

func (s *BoltStore) ListVersions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var versions []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketVersions).ForEach(func(k, v []byte) error {
			versions = append(versions, string(k))
			return nil
		})
	})
	return versions, err
}

func (s *BoltStore) DeleteVersion(ctx context.Context, versionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketVersions).Get([]byte(versionID)) == nil {
			return fmt.Errorf("%w: %s", port.ErrVersionNotFound, versionID)
		}
		c := tx.Bucket(bucketVerses).Cursor()
		prefix := versionPrefix(versionID)
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return tx.Bucket(bucketVersions).Delete([]byte(versionID))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
