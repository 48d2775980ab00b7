// Package canon holds the canonical 66-book table: names, short names,
// testament, chapter counts and known abbreviations. The table is static
// data; lookup indexes are built once on first use.
package canon

import (
	"strings"
	"sync"

	"scriptureref/internal/domain"
)

type Book struct {
	ID            int
	Name          string
	ShortName     string
	Testament     domain.Testament
	ChapterCount  int
	Abbreviations []string
}

var (
	once        sync.Once
	records     []domain.BookRecord
	abbrevIndex map[string]int
	nameIndex   map[string]int
)

func buildIndexes() {
	records = make([]domain.BookRecord, 0, len(books))
	abbrevIndex = make(map[string]int)
	nameIndex = make(map[string]int)
	for _, b := range books {
		records = append(records, domain.BookRecord{
			ID:           b.ID,
			Name:         b.Name,
			ShortName:    b.ShortName,
			Order:        b.ID,
			Testament:    b.Testament,
			ChapterCount: b.ChapterCount,
		})
		nameIndex[strings.ToLower(b.Name)] = b.ID
		nameIndex[strings.ToLower(b.ShortName)] = b.ID
		for _, a := range b.Abbreviations {
			abbrevIndex[a] = b.ID
		}
	}
}

// Books returns the canonical book records in canonical order.
func Books() []domain.BookRecord {
	once.Do(buildIndexes)
	out := make([]domain.BookRecord, len(records))
	copy(out, records)
	return out
}

// AbbreviationIndex maps each known lower-cased abbreviation to the ID of its
// canonical target book.
func AbbreviationIndex() map[string]int {
	once.Do(buildIndexes)
	out := make(map[string]int, len(abbrevIndex))
	for k, v := range abbrevIndex {
		out[k] = v
	}
	return out
}

// ResolveName resolves a book name, short name or abbreviation to a book ID.
// Matching is case-insensitive and exact, with no fuzzy fallback.
func ResolveName(name string) (int, bool) {
	once.Do(buildIndexes)
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := nameIndex[key]; ok {
		return id, true
	}
	id, ok := abbrevIndex[key]
	return id, ok
}

// BookByID returns the table entry for a book ID. IDs follow canonical order,
// 1 through 66.
func BookByID(id int) (Book, bool) {
	if id < 1 || id > len(books) {
		return Book{}, false
	}
	return books[id-1], true
}

// Count returns the number of books in the table.
func Count() int { return len(books) }
