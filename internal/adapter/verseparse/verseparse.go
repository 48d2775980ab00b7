// Package verseparse reads plain-text verse files, one verse per line:
//
//	John 3:16 For God so loved the world...
//	1 John 2:1 My little children...
//	Jhn 3:17	(tab-separated works too)
//
// Book names resolve strictly against the canonical table; no fuzzy
// matching happens during ingest. Lines that do not carry a book, a
// chapter:verse locator and text are skipped, not errors.
package verseparse

import (
	"strconv"
	"strings"

	"scriptureref/internal/adapter/refparse"
	"scriptureref/internal/canon"
	"scriptureref/internal/domain"
)

// ParseLine parses a single line. The second return value is false for
// blank lines, comments and lines that do not fit the verse shape.
func ParseLine(line string) (domain.VerseLine, bool) {
	norm := refparse.Normalize(line)
	if norm == "" || strings.HasPrefix(norm, "#") {
		return domain.VerseLine{}, false
	}

	tokens := strings.Fields(norm)
	locator := -1
	for i, t := range tokens {
		if strings.Contains(t, ":") {
			locator = i
			break
		}
	}
	if locator < 1 || locator == len(tokens)-1 {
		return domain.VerseLine{}, false
	}

	chapter, verse, ok := splitLocator(tokens[locator])
	if !ok {
		return domain.VerseLine{}, false
	}

	bookName := strings.Join(tokens[:locator], " ")
	bookID, ok := canon.ResolveName(bookName)
	if !ok {
		return domain.VerseLine{}, false
	}

	return domain.VerseLine{
		BookID:  bookID,
		Chapter: chapter,
		Verse:   verse,
		Text:    strings.Join(tokens[locator+1:], " "),
	}, true
}

// ParseFile parses every line of content and returns the verse lines along
// with the number of lines skipped.
func ParseFile(content string) ([]domain.VerseLine, int) {
	var lines []domain.VerseLine
	skipped := 0
	for _, raw := range strings.Split(content, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, ok := ParseLine(raw)
		if !ok {
			skipped++
			continue
		}
		lines = append(lines, line)
	}
	return lines, skipped
}

func splitLocator(token string) (chapter, verse int, ok bool) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	chapter, err := strconv.Atoi(parts[0])
	if err != nil || chapter < 1 {
		return 0, 0, false
	}
	verse, err = strconv.Atoi(parts[1])
	if err != nil || verse < 1 {
		return 0, 0, false
	}
	return chapter, verse, true
}
