package port

import (
	"context"

	"scriptureref/internal/domain"
)

// BoundsProvider resolves chapter and verse bounds for a book under one
// Bible version, caching per (book, version).
type BoundsProvider interface {
	GetBounds(ctx context.Context, book domain.BookRecord, versionID string) (domain.ChapterVerseInfo, error)

	// Clear drops all cached bounds. Mandatory on version change.
	Clear()
}
