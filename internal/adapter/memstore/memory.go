// Package memstore is an in-memory VerseStore used by tests and the wasm
// build, where no filesystem-backed store is available.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

type MemoryStore struct {
	mu       sync.RWMutex
	chapters map[string][]domain.Verse
	versions map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chapters: make(map[string][]domain.Verse),
		versions: make(map[string]struct{}),
	}
}

func chapterKey(versionID string, bookID, chapter int) string {
	return fmt.Sprintf("%s/%d/%d", versionID, bookID, chapter)
}

func (s *MemoryStore) GetVerses(ctx context.Context, versionID string, bookID, chapter int) ([]domain.Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.chapters[chapterKey(versionID, bookID, chapter)]
	verses := make([]domain.Verse, len(stored))
	copy(verses, stored)
	return verses, nil
}

func (s *MemoryStore) PutVerses(ctx context.Context, versionID string, bookID, chapter int, verses []domain.Verse) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]domain.Verse, len(verses))
	copy(stored, verses)
	sort.Slice(stored, func(i, j int) bool { return stored[i].Number < stored[j].Number })
	s.chapters[chapterKey(versionID, bookID, chapter)] = stored
	s.versions[versionID] = struct{}{}
	return nil
}

func (s *MemoryStore) ListVersions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	versions := make([]string, 0, len(s.versions))
	for v := range s.versions {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions, nil
}

func (s *MemoryStore) DeleteVersion(ctx context.Context, versionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.versions[versionID]; !ok {
		return fmt.Errorf("%w: %s", port.ErrVersionNotFound, versionID)
	}
	prefix := versionID + "/"
	for key := range s.chapters {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.chapters, key)
		}
	}
	delete(s.versions, versionID)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
