// Package bounds resolves and caches chapter/verse bounds per (book,
// version). Population walks every chapter of a book through the verse
// store once; concurrent requests for the same key share a single
// population instead of issuing duplicate fetch sequences.
package bounds

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

// DefaultFallbackVerses is recorded for a chapter whose fetch fails or
// comes back empty. 31 is a conservative mid-size chapter length.
const DefaultFallbackVerses = 31

// DefaultCapacity bounds the cache. 66 books per version, so the default
// holds roughly two versions before the oldest entries rotate out.
const DefaultCapacity = 128

type Loader struct {
	store          port.VerseStore
	fallbackVerses int
	capacity       int
	logger         *slog.Logger

	mu       sync.Mutex
	entries  map[string]*domain.ChapterVerseInfo
	order    []string
	inflight map[string]*call
	gen      uint64
}

// call is one in-flight population. Waiters block on done rather than
// polling; the populating goroutine fills info and err before closing it.
type call struct {
	done chan struct{}
	info domain.ChapterVerseInfo
	err  error
}

func New(store port.VerseStore, fallbackVerses, capacity int, logger *slog.Logger) *Loader {
	if fallbackVerses <= 0 {
		fallbackVerses = DefaultFallbackVerses
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		store:          store,
		fallbackVerses: fallbackVerses,
		capacity:       capacity,
		logger:         logger,
		entries:        make(map[string]*domain.ChapterVerseInfo),
		inflight:       make(map[string]*call),
	}
}

func cacheKey(bookID int, versionID string) string {
	return fmt.Sprintf("%s/%d", versionID, bookID)
}

// GetBounds returns the chapter/verse bounds for book under versionID,
// populating the cache on first use. The returned value is a private copy.
func (l *Loader) GetBounds(ctx context.Context, book domain.BookRecord, versionID string) (domain.ChapterVerseInfo, error) {
	key := cacheKey(book.ID, versionID)

	l.mu.Lock()
	if info, ok := l.entries[key]; ok {
		out := copyInfo(*info)
		l.mu.Unlock()
		return out, nil
	}
	if c, ok := l.inflight[key]; ok {
		l.mu.Unlock()
		select {
		case <-c.done:
			if c.err != nil {
				return domain.ChapterVerseInfo{}, c.err
			}
			return copyInfo(c.info), nil
		case <-ctx.Done():
			return domain.ChapterVerseInfo{}, ctx.Err()
		}
	}
	c := &call{done: make(chan struct{})}
	l.inflight[key] = c
	gen := l.gen
	l.mu.Unlock()

	info, err := l.populate(ctx, book, versionID)

	l.mu.Lock()
	if err == nil && l.gen == gen {
		l.insert(key, info)
	}
	delete(l.inflight, key)
	l.mu.Unlock()

	c.info = info
	c.err = err
	close(c.done)

	if err != nil {
		return domain.ChapterVerseInfo{}, err
	}
	return copyInfo(info), nil
}

// populate fetches every chapter of the book once. A failing or empty
// chapter records the conservative fallback and population continues; only
// context cancellation aborts the walk.
func (l *Loader) populate(ctx context.Context, book domain.BookRecord, versionID string) (domain.ChapterVerseInfo, error) {
	info := domain.ChapterVerseInfo{
		BookID:       book.ID,
		ChapterCount: book.ChapterCount,
		VerseCounts:  make(map[int]int, book.ChapterCount),
	}

	for chapter := 1; chapter <= book.ChapterCount; chapter++ {
		if err := ctx.Err(); err != nil {
			return domain.ChapterVerseInfo{}, err
		}

		verses, err := l.store.GetVerses(ctx, versionID, book.ID, chapter)
		if err != nil {
			if ctx.Err() != nil {
				return domain.ChapterVerseInfo{}, ctx.Err()
			}
			l.logger.Warn("verse fetch failed, recording fallback count",
				"book", book.Name,
				"chapter", chapter,
				"version", versionID,
				"error", err)
			l.record(&info, chapter, l.fallbackVerses)
			continue
		}

		maxVerse := 0
		for _, v := range verses {
			if v.Number > maxVerse {
				maxVerse = v.Number
			}
		}
		if maxVerse == 0 {
			// An empty chapter would make every verse reference
			// unclampable; treat it like missing data.
			l.logger.Debug("empty chapter, recording fallback count",
				"book", book.Name,
				"chapter", chapter,
				"version", versionID)
			maxVerse = l.fallbackVerses
		}
		l.record(&info, chapter, maxVerse)
	}
	return info, nil
}

func (l *Loader) record(info *domain.ChapterVerseInfo, chapter, count int) {
	info.VerseCounts[chapter] = count
	if count > info.MaxVerseSeen {
		info.MaxVerseSeen = count
	}
}

// insert stores a populated entry, evicting the oldest one when the cache is
// full. Callers hold l.mu.
func (l *Loader) insert(key string, info domain.ChapterVerseInfo) {
	if _, exists := l.entries[key]; !exists {
		if len(l.entries) >= l.capacity && len(l.order) > 0 {
			oldest := l.order[0]
			l.order = l.order[1:]
			delete(l.entries, oldest)
		}
		l.order = append(l.order, key)
	}
	stored := copyInfo(info)
	l.entries[key] = &stored
}

// Clear drops every cached entry and invalidates in-flight populations so
// their results are discarded instead of cached. Mandatory on version
// change.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[string]*domain.ChapterVerseInfo)
	l.order = nil
	l.gen++
}

// Size returns the number of cached entries.
func (l *Loader) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func copyInfo(in domain.ChapterVerseInfo) domain.ChapterVerseInfo {
	out := in
	out.VerseCounts = make(map[int]int, len(in.VerseCounts))
	for k, v := range in.VerseCounts {
		out.VerseCounts[k] = v
	}
	return out
}
