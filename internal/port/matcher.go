package port

import "scriptureref/internal/domain"

// BookMatcher ranks catalog books against a free-form book token.
type BookMatcher interface {
	// FindMatches returns up to limit matches ordered by score descending,
	// ties broken by canonical book order.
	FindMatches(input string, books []domain.BookRecord, limit int) []domain.BookMatch

	// BestMatch returns the single highest-ranked match, if any.
	BestMatch(input string, books []domain.BookRecord) (domain.BookMatch, bool)
}
