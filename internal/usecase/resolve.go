package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"scriptureref/internal/adapter/refparse"
	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

// ErrSuperseded reports that a newer validation began before this one
// committed its result. Callers driving a UI should drop the result
// and wait for the newest call.
var ErrSuperseded = errors.New("validation superseded by newer request")

// ResolveUseCase parses raw input into structured references and
// validates them against per-version chapter and verse bounds.
type ResolveUseCase struct {
	parser  *refparse.Parser
	bounds  port.BoundsProvider
	catalog port.BookCatalog

	generation atomic.Uint64
}

// NewResolveUseCase creates a new resolve use case.
func NewResolveUseCase(
	parser *refparse.Parser,
	bounds port.BoundsProvider,
	catalog port.BookCatalog,
) *ResolveUseCase {
	return &ResolveUseCase{
		parser:  parser,
		bounds:  bounds,
		catalog: catalog,
	}
}

// Parse parses raw input against the current book catalog.
func (u *ResolveUseCase) Parse(raw string) domain.ParsedReference {
	return u.parser.Parse(raw, u.catalog.ListBooks())
}

// Resolve parses and validates in one step.
func (u *ResolveUseCase) Resolve(ctx context.Context, raw, versionID string) (domain.ParsedReference, domain.ValidationResult, error) {
	ref := u.Parse(raw)
	result, err := u.Validate(ctx, ref, versionID)
	return ref, result, err
}

// Validate checks a parsed reference against the chapter and verse
// bounds of the given version. Checking stops at the first violation,
// and every violation carries a clamped auto-correction that is itself
// a complete, valid reference.
func (u *ResolveUseCase) Validate(ctx context.Context, ref domain.ParsedReference, versionID string) (domain.ValidationResult, error) {
	// Parse-stage failures pass through untouched. No numeric checks
	// are run on a reference that never resolved a book.
	if !ref.IsValid || ref.Book == nil {
		return domain.ValidationResult{IsValid: false, Error: ref.Error}, nil
	}

	// A bare book name has no numeric fields to check.
	if ref.Chapter == nil {
		return domain.ValidationResult{IsValid: true}, nil
	}

	info, err := u.bounds.GetBounds(ctx, *ref.Book, versionID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("failed to load bounds for %s: %w", ref.Book.Name, err)
	}

	chapter := *ref.Chapter
	if chapter < 1 || chapter > info.ChapterCount {
		return domain.ValidationResult{
			IsValid:        false,
			Error:          fmt.Sprintf("%s has only %d chapters", ref.Book.Name, info.ChapterCount),
			AutoCorrection: clampToBounds(ref, info),
		}, nil
	}

	if ref.VerseStart == nil {
		return domain.ValidationResult{IsValid: true}, nil
	}

	maxVerse := info.MaxVerse(chapter)
	start := *ref.VerseStart
	if start < 1 || start > maxVerse {
		return domain.ValidationResult{
			IsValid:        false,
			Error:          fmt.Sprintf("%s %d has only %d verses", ref.Book.Name, chapter, maxVerse),
			AutoCorrection: clampToBounds(ref, info),
		}, nil
	}

	if ref.VerseEnd != nil {
		end := *ref.VerseEnd
		if end < start {
			return domain.ValidationResult{
				IsValid:        false,
				Error:          "Invalid verse range",
				AutoCorrection: clampToBounds(ref, info),
			}, nil
		}
		if end > maxVerse {
			return domain.ValidationResult{
				IsValid:        false,
				Error:          fmt.Sprintf("%s %d has only %d verses", ref.Book.Name, chapter, maxVerse),
				AutoCorrection: clampToBounds(ref, info),
			}, nil
		}
	}

	return domain.ValidationResult{IsValid: true}, nil
}

// ValidateLatest runs Validate and discards the result if another
// ValidateLatest call started in the meantime. The bounds fetch is
// not aborted, so a superseded call still warms the cache.
func (u *ResolveUseCase) ValidateLatest(ctx context.Context, ref domain.ParsedReference, versionID string) (domain.ValidationResult, error) {
	gen := u.generation.Add(1)
	result, err := u.Validate(ctx, ref, versionID)
	if u.generation.Load() != gen {
		return domain.ValidationResult{}, ErrSuperseded
	}
	return result, err
}

// clampToBounds builds the auto-correction for an out-of-range
// reference: chapter clamped first, then verse fields clamped into
// the corrected chapter. The result is always complete, so feeding it
// back through Validate yields a valid reference.
func clampToBounds(ref domain.ParsedReference, info domain.ChapterVerseInfo) *domain.ParsedReference {
	chapter := 1
	if ref.Chapter != nil {
		chapter = clamp(*ref.Chapter, 1, info.ChapterCount)
	}

	maxVerse := info.MaxVerse(chapter)
	start := 1
	if ref.VerseStart != nil {
		start = clamp(*ref.VerseStart, 1, maxVerse)
	}

	corrected := &domain.ParsedReference{
		BookToken:  ref.BookToken,
		Book:       ref.Book,
		Chapter:    &chapter,
		VerseStart: &start,
		IsValid:    true,
		IsComplete: true,
	}
	if ref.VerseEnd != nil {
		end := clamp(*ref.VerseEnd, start, maxVerse)
		corrected.VerseEnd = &end
	}
	return corrected
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
