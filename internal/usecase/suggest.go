package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

const (
	// DefaultTopBooks is how many book matches seed the suggestion list.
	DefaultTopBooks = 3
	// DefaultConfidentScore is the match score above which chapter and
	// verse continuations are suggested alongside the book name.
	DefaultConfidentScore = 800

	// Score deductions per suggestion tier. The match score dominates;
	// the deductions only order a single book's own suggestions.
	chapterDeduction  = 100
	completeDeduction = 200

	// Completion mode starts from an already-resolved book.
	resolvedScore = 1000
)

var (
	chapterVerseTail = regexp.MustCompile(`(\d+):(\d+)$`)
	chapterTail      = regexp.MustCompile(`(\d+)$`)
)

// SuggestUseCase generates ranked autocomplete suggestions for
// partial reference input. It is synchronous and touches only
// in-memory data, so it is safe to call on every keystroke.
type SuggestUseCase struct {
	matcher        port.BookMatcher
	catalog        port.BookCatalog
	topBooks       int
	confidentScore int
}

// NewSuggestUseCase creates a new suggest use case. Non-positive
// topBooks or confidentScore select the defaults.
func NewSuggestUseCase(matcher port.BookMatcher, catalog port.BookCatalog, topBooks, confidentScore int) *SuggestUseCase {
	if topBooks <= 0 {
		topBooks = DefaultTopBooks
	}
	if confidentScore <= 0 {
		confidentScore = DefaultConfidentScore
	}
	return &SuggestUseCase{
		matcher:        matcher,
		catalog:        catalog,
		topBooks:       topBooks,
		confidentScore: confidentScore,
	}
}

// Suggest returns up to limit suggestions for partial input. Every
// matched book yields a book suggestion; confident matches also yield
// chapter and complete continuations at fixed deductions. The final
// list is sorted by score, stable for ties. limit <= 0 means no cap.
func (u *SuggestUseCase) Suggest(input string, limit int) []domain.Suggestion {
	matches := u.matcher.FindMatches(input, u.catalog.ListBooks(), u.topBooks)
	if len(matches) == 0 {
		return nil
	}

	suggestions := make([]domain.Suggestion, 0, len(matches)*3)
	for _, m := range matches {
		book := m.Book
		suggestions = append(suggestions, domain.Suggestion{
			Text:  book.Name,
			Kind:  domain.SuggestBook,
			Score: m.Score,
			Book:  &book,
		})
		if m.Score > u.confidentScore {
			suggestions = append(suggestions,
				domain.Suggestion{
					Text:  fmt.Sprintf("%s 1", book.Name),
					Kind:  domain.SuggestChapter,
					Score: m.Score - chapterDeduction,
					Book:  &book,
				},
				domain.Suggestion{
					Text:  fmt.Sprintf("%s 1:1", book.Name),
					Kind:  domain.SuggestComplete,
					Score: m.Score - completeDeduction,
					Book:  &book,
				},
			)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Complete suggests the next continuation once a book is already
// resolved and the user keeps typing. The numeric tail of the input
// decides the tier: "3:16" extends to a verse range, "3" completes
// the first verse, and a bare book name opens chapter one.
func (u *SuggestUseCase) Complete(book domain.BookRecord, tail string) []domain.Suggestion {
	tail = strings.TrimSpace(tail)

	if m := chapterVerseTail.FindStringSubmatch(tail); m != nil {
		chapter, _ := strconv.Atoi(m[1])
		verse, _ := strconv.Atoi(m[2])
		return []domain.Suggestion{{
			Text:  fmt.Sprintf("%s %d:%d-%d", book.Name, chapter, verse, verse+1),
			Kind:  domain.SuggestVerseRange,
			Score: resolvedScore,
			Book:  &book,
		}}
	}

	if m := chapterTail.FindStringSubmatch(tail); m != nil {
		chapter, _ := strconv.Atoi(m[1])
		return []domain.Suggestion{{
			Text:  fmt.Sprintf("%s %d:1", book.Name, chapter),
			Kind:  domain.SuggestComplete,
			Score: resolvedScore - completeDeduction,
			Book:  &book,
		}}
	}

	return []domain.Suggestion{
		{
			Text:  fmt.Sprintf("%s 1", book.Name),
			Kind:  domain.SuggestChapter,
			Score: resolvedScore - chapterDeduction,
			Book:  &book,
		},
		{
			Text:  fmt.Sprintf("%s 1:1", book.Name),
			Kind:  domain.SuggestComplete,
			Score: resolvedScore - completeDeduction,
			Book:  &book,
		},
	}
}
