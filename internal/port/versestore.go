package port

import (
	"context"
	"errors"

	"scriptureref/internal/domain"
)

// ErrVersionNotFound is returned by DeleteVersion when nothing is stored
// under the version ID.
var ErrVersionNotFound = errors.New("version not found")

// VerseStore holds verse text per (version, book, chapter). The engine reads
// it only to learn verse numbers; the ingest and lookup surfaces read text too.
type VerseStore interface {
	// GetVerses returns the verses of one chapter ordered by verse number.
	GetVerses(ctx context.Context, versionID string, bookID int, chapter int) ([]domain.Verse, error)

	// PutVerses replaces the stored verses of one chapter.
	PutVerses(ctx context.Context, versionID string, bookID int, chapter int, verses []domain.Verse) error

	// ListVersions returns the stored version IDs, sorted.
	ListVersions(ctx context.Context) ([]string, error)

	// DeleteVersion removes every chapter stored under the version.
	DeleteVersion(ctx context.Context, versionID string) error

	Close() error
}
