package port

import "scriptureref/internal/domain"

// BookCatalog provides the canonical book list for the active translation.
// Implementations return records in canonical order.
type BookCatalog interface {
	ListBooks() []domain.BookRecord
}
