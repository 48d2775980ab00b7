// Package catalog adapts the canonical book table to the BookCatalog port.
package catalog

import (
	"scriptureref/internal/canon"
	"scriptureref/internal/domain"
)

// Static serves the built-in 66-book canon. Records are built once; callers
// get copies, so a catalog swap replaces the instance wholesale instead of
// mutating a shared list.
type Static struct {
	books []domain.BookRecord
}

func NewStatic() *Static {
	return &Static{books: canon.Books()}
}

func (s *Static) ListBooks() []domain.BookRecord {
	out := make([]domain.BookRecord, len(s.books))
	copy(out, s.books)
	return out
}
