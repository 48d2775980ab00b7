package domain

import (
	"fmt"
	"strings"
)

type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

type BookRecord struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	ShortName    string    `json:"short_name"`
	Order        int       `json:"order"`
	Testament    Testament `json:"testament"`
	ChapterCount int       `json:"chapter_count"`
}

type MatchType string

const (
	MatchExact        MatchType = "Exact"
	MatchAbbreviation MatchType = "Abbreviation"
	MatchPrefix       MatchType = "Prefix"
	MatchSubstring    MatchType = "Substring"
	MatchFuzzy        MatchType = "Fuzzy"
)

type BookMatch struct {
	Book        BookRecord `json:"book"`
	Score       int        `json:"score"`
	Type        MatchType  `json:"type"`
	MatchedText string     `json:"matched_text"`
}

type ParsedReference struct {
	BookToken  string      `json:"book_token"`
	Book       *BookRecord `json:"book,omitempty"`
	Chapter    *int        `json:"chapter,omitempty"`
	VerseStart *int        `json:"verse_start,omitempty"`
	VerseEnd   *int        `json:"verse_end,omitempty"`
	IsValid    bool        `json:"is_valid"`
	IsComplete bool        `json:"is_complete"`
	Error      string      `json:"error,omitempty"`
}

// String renders the canonical text form ("John", "John 3", "John 3:16",
// "John 3:16-17"). Complete references round-trip through the parser.
func (r ParsedReference) String() string {
	var b strings.Builder
	if r.Book != nil {
		b.WriteString(r.Book.Name)
	} else {
		b.WriteString(r.BookToken)
	}
	if r.Chapter == nil {
		return b.String()
	}
	fmt.Fprintf(&b, " %d", *r.Chapter)
	if r.VerseStart == nil {
		return b.String()
	}
	fmt.Fprintf(&b, ":%d", *r.VerseStart)
	if r.VerseEnd != nil {
		fmt.Fprintf(&b, "-%d", *r.VerseEnd)
	}
	return b.String()
}

type ValidationResult struct {
	IsValid        bool             `json:"is_valid"`
	Error          string           `json:"error,omitempty"`
	AutoCorrection *ParsedReference `json:"auto_correction,omitempty"`
}

type ChapterVerseInfo struct {
	BookID       int
	ChapterCount int
	VerseCounts  map[int]int
	MaxVerseSeen int
}

// MaxVerse returns the recorded verse count for chapter, falling back to the
// largest count seen anywhere in the book when the chapter is unknown.
func (i ChapterVerseInfo) MaxVerse(chapter int) int {
	if n, ok := i.VerseCounts[chapter]; ok {
		return n
	}
	return i.MaxVerseSeen
}

type SuggestionKind string

const (
	SuggestBook       SuggestionKind = "book"
	SuggestChapter    SuggestionKind = "chapter"
	SuggestComplete   SuggestionKind = "complete"
	SuggestVerseRange SuggestionKind = "verse-range"
)

type Suggestion struct {
	Text  string         `json:"text"`
	Kind  SuggestionKind `json:"kind"`
	Score int            `json:"score"`
	Book  *BookRecord    `json:"book,omitempty"`
}

type Verse struct {
	Number int    `json:"verse"`
	Text   string `json:"text"`
}

// VerseLine is one parsed line of a plain-text verse file.
type VerseLine struct {
	BookID  int
	Chapter int
	Verse   int
	Text    string
}
