package usecase

import (
	"context"
	"fmt"
	"sort"

	"scriptureref/internal/adapter/fs"
	"scriptureref/internal/adapter/verseparse"
	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

// IngestUseCase loads plain-text verse files into a verse store.
type IngestUseCase struct {
	store  port.VerseStore
	walker port.FileWalker
}

// NewIngestUseCase creates a new ingest use case.
func NewIngestUseCase(store port.VerseStore, walker port.FileWalker) *IngestUseCase {
	return &IngestUseCase{store: store, walker: walker}
}

// IngestResult contains the results of an ingest run.
type IngestResult struct {
	FilesRead     int
	LinesParsed   int
	LinesSkipped  int
	ChaptersSaved int
	Errors        []string
}

type chapterID struct {
	book    int
	chapter int
}

// Ingest parses every verse file under root and stores the verses
// under versionID. onFile, when non-nil, is called after each file
// with the running count, for progress reporting.
func (u *IngestUseCase) Ingest(ctx context.Context, root, versionID string, onFile func(done, total int)) (*IngestResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	result := &IngestResult{}

	// One chapter's verses may be spread across files, so collect
	// everything before writing.
	chapters := make(map[chapterID][]domain.Verse)
	for i, file := range files {
		content, err := fs.ReadFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
			continue
		}

		lines, skipped := verseparse.ParseFile(content)
		result.FilesRead++
		result.LinesParsed += len(lines)
		result.LinesSkipped += skipped

		for _, line := range lines {
			key := chapterID{book: line.BookID, chapter: line.Chapter}
			chapters[key] = append(chapters[key], domain.Verse{Number: line.Verse, Text: line.Text})
		}

		if onFile != nil {
			onFile(i+1, len(files))
		}
	}

	if err := writeChapters(ctx, u.store, versionID, chapters, result); err != nil {
		return result, err
	}
	return result, nil
}

// IngestContent parses verse lines from an in-memory string and stores
// them under versionID. It is the counterpart of Ingest for hosts
// without a filesystem, such as the wasm build.
func IngestContent(ctx context.Context, store port.VerseStore, content, versionID string) (*IngestResult, error) {
	lines, skipped := verseparse.ParseFile(content)
	result := &IngestResult{
		FilesRead:    1,
		LinesParsed:  len(lines),
		LinesSkipped: skipped,
	}

	chapters := make(map[chapterID][]domain.Verse)
	for _, line := range lines {
		key := chapterID{book: line.BookID, chapter: line.Chapter}
		chapters[key] = append(chapters[key], domain.Verse{Number: line.Verse, Text: line.Text})
	}

	if err := writeChapters(ctx, store, versionID, chapters, result); err != nil {
		return result, err
	}
	return result, nil
}

// writeChapters stores grouped verses in canonical order so repeated
// runs touch the store the same way.
func writeChapters(ctx context.Context, store port.VerseStore, versionID string, chapters map[chapterID][]domain.Verse, result *IngestResult) error {
	keys := make([]chapterID, 0, len(chapters))
	for key := range chapters {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].book != keys[j].book {
			return keys[i].book < keys[j].book
		}
		return keys[i].chapter < keys[j].chapter
	})

	for _, key := range keys {
		if err := store.PutVerses(ctx, versionID, key.book, key.chapter, chapters[key]); err != nil {
			return fmt.Errorf("failed to store book %d chapter %d: %w", key.book, key.chapter, err)
		}
		result.ChaptersSaved++
	}
	return nil
}
