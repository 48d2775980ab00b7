// Package refparse turns free-form text into a structured scripture
// reference. The grammar admits three shapes, most specific first:
//
//	<book> <chapter>:<verseStart>[-<verseEnd>]
//	<book> <chapter>
//	<book>
//
// Book tokens may carry a leading ordinal (1, 2, 3) and span several words
// ("Song of Solomon"). Anything that fails the grammar falls back to a
// best-effort book match over the whole input.
package refparse

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"scriptureref/internal/domain"
	"scriptureref/internal/port"
)

type refNode struct {
	Book       string `@Book`
	Chapter    *int   `( @Number`
	VerseStart *int   `  ( ":" @Number`
	VerseEnd   *int   `    ( "-" @Number )? )? )?`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Book names: optional leading ordinal, then one or more word groups,
	// optionally joined by "of" and optionally ending in a period.
	// Examples: John, jn., 1 John, Song of Solomon.
	{Name: "Book", Pattern: `(?:[1-3]\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refNode](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parser resolves raw input against a book catalog. It is stateless and safe
// for concurrent use.
type Parser struct {
	matcher        port.BookMatcher
	confidentScore int
}

// New returns a Parser that accepts a book resolution outright when the
// matcher scores it at or above confidentScore, and asks "Did you mean"
// below it.
func New(matcher port.BookMatcher, confidentScore int) *Parser {
	return &Parser{
		matcher:        matcher,
		confidentScore: confidentScore,
	}
}

// Parse converts raw text into a ParsedReference. It never fails: malformed
// input comes back as IsValid=false with a human-readable Error. Empty input
// is invalid but carries no error. Identical (raw, books) input always yields
// a structurally identical result.
func (p *Parser) Parse(raw string, books []domain.BookRecord) domain.ParsedReference {
	norm := Normalize(raw)
	if norm == "" {
		return domain.ParsedReference{}
	}

	node, err := refParser.ParseString("", norm)
	if err != nil || !positiveNumbers(node) {
		return p.fallback(norm, books)
	}

	ref := domain.ParsedReference{
		BookToken:  cleanBookToken(node.Book),
		Chapter:    node.Chapter,
		VerseStart: node.VerseStart,
		VerseEnd:   node.VerseEnd,
	}
	p.resolveBook(&ref, books)

	if ref.IsValid && ref.VerseEnd != nil && *ref.VerseEnd < *ref.VerseStart {
		ref.IsValid = false
		ref.Error = "Invalid verse range"
	}
	ref.IsComplete = ref.Book != nil && ref.Chapter != nil && ref.VerseStart != nil
	return ref
}

// resolveBook attaches the best catalog match for the book token. Scores at
// or above the confident threshold validate the reference pending numeric
// checks; lower scores keep the candidate but flag it as a guess.
func (p *Parser) resolveBook(ref *domain.ParsedReference, books []domain.BookRecord) {
	match, ok := p.matcher.BestMatch(ref.BookToken, books)
	if !ok {
		ref.Error = fmt.Sprintf("Book %q not found", ref.BookToken)
		return
	}
	book := match.Book
	ref.Book = &book
	if match.Score >= p.confidentScore {
		ref.IsValid = true
		return
	}
	ref.Error = fmt.Sprintf("Did you mean %q?", match.Book.Name)
}

// fallback handles input the grammar rejected: try the whole string as a
// book name before giving up on the format.
func (p *Parser) fallback(norm string, books []domain.BookRecord) domain.ParsedReference {
	ref := domain.ParsedReference{BookToken: norm}
	match, ok := p.matcher.BestMatch(norm, books)
	if !ok {
		ref.Error = "Invalid reference format"
		return ref
	}
	book := match.Book
	ref.Book = &book
	if match.Score >= p.confidentScore {
		ref.IsValid = true
		return ref
	}
	ref.Error = fmt.Sprintf("Did you mean %q?", match.Book.Name)
	return ref
}

// positiveNumbers reports whether every captured numeric field is >= 1.
// Chapter and verse zero exist in no versification; clamping out-of-range
// values is the validator's job, rejecting non-positive ones is the
// parser's.
func positiveNumbers(node *refNode) bool {
	for _, n := range []*int{node.Chapter, node.VerseStart, node.VerseEnd} {
		if n != nil && *n < 1 {
			return false
		}
	}
	return true
}

func cleanBookToken(token string) string {
	if len(token) > 0 && token[len(token)-1] == '.' {
		token = token[:len(token)-1]
	}
	return Normalize(token)
}
