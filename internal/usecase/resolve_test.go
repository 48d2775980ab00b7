package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"scriptureref/internal/adapter/catalog"
	"scriptureref/internal/adapter/matcher"
	"scriptureref/internal/adapter/refparse"
	"scriptureref/internal/canon"
	"scriptureref/internal/domain"
)

// stubBounds serves bounds from a function, counting calls.
type stubBounds struct {
	mu    sync.Mutex
	calls int
	fn    func(book domain.BookRecord, versionID string) (domain.ChapterVerseInfo, error)
}

func (s *stubBounds) GetBounds(_ context.Context, book domain.BookRecord, versionID string) (domain.ChapterVerseInfo, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.fn(book, versionID)
}

func (s *stubBounds) Clear() {}

func (s *stubBounds) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// kjvInfo fabricates bounds with 30 verses per chapter, except a few
// chapters pinned to their real counts.
func kjvInfo(book domain.BookRecord, _ string) (domain.ChapterVerseInfo, error) {
	counts := make(map[int]int, book.ChapterCount)
	for c := 1; c <= book.ChapterCount; c++ {
		counts[c] = 30
	}
	switch book.Name {
	case "Genesis":
		counts[50] = 26
	case "John":
		counts[3] = 36
	}
	return domain.ChapterVerseInfo{
		BookID:       book.ID,
		ChapterCount: book.ChapterCount,
		VerseCounts:  counts,
		MaxVerseSeen: 36,
	}, nil
}

func newTestResolver() (*ResolveUseCase, *stubBounds) {
	m := matcher.New(canon.AbbreviationIndex(), matcher.DefaultMinSimilarity)
	p := refparse.New(m, 800)
	bounds := &stubBounds{fn: kjvInfo}
	return NewResolveUseCase(p, bounds, catalog.NewStatic()), bounds
}

func TestValidateChapterOutOfRange(t *testing.T) {
	u, _ := newTestResolver()

	ref := u.Parse("Genesis 51:1")
	if !ref.IsValid {
		t.Fatalf("parse should succeed structurally: %+v", ref)
	}

	result, err := u.Validate(context.Background(), ref, "kjv")
	if err != nil {
		t.Fatal(err)
	}
	if result.IsValid {
		t.Error("chapter 51 of Genesis should be invalid")
	}
	if result.Error != "Genesis has only 50 chapters" {
		t.Errorf("unexpected error text: %q", result.Error)
	}

	corr := result.AutoCorrection
	if corr == nil {
		t.Fatal("expected an auto-correction")
	}
	if corr.Book == nil || corr.Book.Name != "Genesis" {
		t.Errorf("correction book = %+v", corr.Book)
	}
	if corr.Chapter == nil || *corr.Chapter != 50 {
		t.Errorf("correction chapter = %v, want 50", corr.Chapter)
	}
	if corr.VerseStart == nil || *corr.VerseStart != 1 {
		t.Errorf("correction verseStart = %v, want 1", corr.VerseStart)
	}
	if !corr.IsComplete || !corr.IsValid {
		t.Errorf("correction should be complete and valid: %+v", corr)
	}
}

func TestValidateVerseOutOfRange(t *testing.T) {
	u, _ := newTestResolver()

	result, err := u.Validate(context.Background(), u.Parse("John 3:99"), "kjv")
	if err != nil {
		t.Fatal(err)
	}
	if result.IsValid {
		t.Error("John 3:99 should be invalid")
	}
	if result.Error != "John 3 has only 36 verses" {
		t.Errorf("unexpected error text: %q", result.Error)
	}
	corr := result.AutoCorrection
	if corr == nil || corr.VerseStart == nil || *corr.VerseStart != 36 {
		t.Fatalf("expected verseStart clamped to 36, got %+v", corr)
	}
	if *corr.Chapter != 3 {
		t.Errorf("correction chapter = %d, want 3", *corr.Chapter)
	}
}

func TestValidateVerseEndClamped(t *testing.T) {
	u, _ := newTestResolver()

	result, err := u.Validate(context.Background(), u.Parse("John 3:16-99"), "kjv")
	if err != nil {
		t.Fatal(err)
	}
	if result.IsValid {
		t.Error("John 3:16-99 should be invalid")
	}
	if result.Error != "John 3 has only 36 verses" {
		t.Errorf("unexpected error text: %q", result.Error)
	}
	corr := result.AutoCorrection
	if corr == nil || corr.VerseEnd == nil {
		t.Fatalf("expected a clamped verse end, got %+v", corr)
	}
	if *corr.VerseStart != 16 || *corr.VerseEnd != 36 {
		t.Errorf("correction = %d-%d, want 16-36", *corr.VerseStart, *corr.VerseEnd)
	}
}

func TestValidateAccepts(t *testing.T) {
	u, _ := newTestResolver()

	for _, input := range []string{"John 3:16", "jn 3:16-17", "Genesis 50:26", "John 3"} {
		t.Run(input, func(t *testing.T) {
			result, err := u.Validate(context.Background(), u.Parse(input), "kjv")
			if err != nil {
				t.Fatal(err)
			}
			if !result.IsValid {
				t.Errorf("%q should validate, got error %q", input, result.Error)
			}
			if result.AutoCorrection != nil {
				t.Errorf("valid reference should carry no correction: %+v", result.AutoCorrection)
			}
		})
	}
}

func TestValidateBookOnlySkipsBounds(t *testing.T) {
	u, bounds := newTestResolver()

	result, err := u.Validate(context.Background(), u.Parse("Psalms"), "kjv")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsValid {
		t.Errorf("bare book should be valid: %+v", result)
	}
	if bounds.callCount() != 0 {
		t.Errorf("bare book should not touch bounds, got %d calls", bounds.callCount())
	}
}

func TestValidateInvalidParsePassesThrough(t *testing.T) {
	u, bounds := newTestResolver()

	cases := []struct {
		input string
		want  string
	}{
		{"Xyzzy 3:16", `Book "Xyzzy" not found`},
		{"John 3:20-16", "Invalid verse range"},
		{"123:456", "Invalid reference format"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := u.Validate(context.Background(), u.Parse(tc.input), "kjv")
			if err != nil {
				t.Fatal(err)
			}
			if result.IsValid {
				t.Error("parse failure must stay invalid")
			}
			if result.Error != tc.want {
				t.Errorf("error = %q, want %q", result.Error, tc.want)
			}
			if result.AutoCorrection != nil {
				t.Errorf("parse failure should carry no correction: %+v", result.AutoCorrection)
			}
		})
	}
	if bounds.callCount() != 0 {
		t.Errorf("parse failures should not touch bounds, got %d calls", bounds.callCount())
	}
}

func TestAutoCorrectionRevalidates(t *testing.T) {
	u, _ := newTestResolver()

	inputs := []string{
		"Genesis 51:1",
		"Genesis 99:99",
		"John 3:99",
		"John 3:16-99",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			result, err := u.Validate(context.Background(), u.Parse(input), "kjv")
			if err != nil {
				t.Fatal(err)
			}
			if result.IsValid || result.AutoCorrection == nil {
				t.Fatalf("expected invalid with correction, got %+v", result)
			}

			again, err := u.Validate(context.Background(), *result.AutoCorrection, "kjv")
			if err != nil {
				t.Fatal(err)
			}
			if !again.IsValid {
				t.Errorf("correction %s should revalidate cleanly, got %q",
					result.AutoCorrection, again.Error)
			}
		})
	}
}

func TestValidateBoundsError(t *testing.T) {
	u, bounds := newTestResolver()
	boom := errors.New("store down")
	bounds.fn = func(domain.BookRecord, string) (domain.ChapterVerseInfo, error) {
		return domain.ChapterVerseInfo{}, boom
	}

	_, err := u.Validate(context.Background(), u.Parse("John 3:16"), "kjv")
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	u, _ := newTestResolver()

	ref, result, err := u.Resolve(context.Background(), "jn 3:16-17", "kjv")
	if err != nil {
		t.Fatal(err)
	}
	if !ref.IsComplete || ref.Book.Name != "John" {
		t.Errorf("unexpected parse: %+v", ref)
	}
	if !result.IsValid {
		t.Errorf("expected valid, got %q", result.Error)
	}
}

func TestValidateLatestSupersededResultDropped(t *testing.T) {
	u, bounds := newTestResolver()

	started := make(chan struct{})
	release := make(chan struct{})
	genesis := bookByName(t, "Genesis")
	bounds.fn = func(book domain.BookRecord, versionID string) (domain.ChapterVerseInfo, error) {
		if book.ID == genesis.ID {
			close(started)
			<-release
		}
		return kjvInfo(book, versionID)
	}

	slow := u.Parse("Genesis 3:1")
	fast := u.Parse("John 3:16")

	var (
		wg      sync.WaitGroup
		slowErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = u.ValidateLatest(context.Background(), slow, "kjv")
	}()

	<-started
	result, err := u.ValidateLatest(context.Background(), fast, "kjv")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsValid {
		t.Errorf("newest call should win: %+v", result)
	}

	close(release)
	wg.Wait()
	if !errors.Is(slowErr, ErrSuperseded) {
		t.Errorf("stale call should report ErrSuperseded, got %v", slowErr)
	}
}

func bookByName(t *testing.T, name string) domain.BookRecord {
	t.Helper()
	for _, b := range canon.Books() {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("book %q not in canon", name)
	return domain.BookRecord{}
}
