package matcher

import (
	"sort"
	"strings"

	"scriptureref/internal/domain"
)

// Score bands per tier. Ordering between tiers is strict: any Exact match
// outranks any Abbreviation match, which outranks any Prefix match, and so on
// down to Fuzzy. Within-tier scores never cross a band boundary.
const (
	exactScore        = 1000
	abbreviationScore = 900
	prefixBase        = 800
	prefixCeiling     = 899
	substringBase     = 600
	substringCeiling  = 650
	fuzzyCeiling      = 400
)

// DefaultMinSimilarity is the cut-off below which a fuzzy candidate is not
// reported at all.
const DefaultMinSimilarity = 0.3

// Matcher ranks catalog books against a free-form token. It is stateless
// apart from the abbreviation index and safe to call on every keystroke.
type Matcher struct {
	abbrev        map[string]int
	minSimilarity float64
}

func New(abbrev map[string]int, minSimilarity float64) *Matcher {
	if minSimilarity <= 0 {
		minSimilarity = DefaultMinSimilarity
	}
	return &Matcher{
		abbrev:        abbrev,
		minSimilarity: minSimilarity,
	}
}

// FindMatches scores every book against input and returns up to limit matches
// ordered by score descending, ties broken by canonical order. A limit of 0
// or less returns all matches.
func (m *Matcher) FindMatches(input string, books []domain.BookRecord, limit int) []domain.BookMatch {
	norm := strings.ToLower(strings.TrimSpace(input))
	if norm == "" {
		return nil
	}

	matches := make([]domain.BookMatch, 0, 8)
	for _, b := range books {
		if match, ok := m.scoreBook(norm, b); ok {
			matches = append(matches, match)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Book.Order < matches[j].Book.Order
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// BestMatch returns the single highest-ranked match, if any.
func (m *Matcher) BestMatch(input string, books []domain.BookRecord) (domain.BookMatch, bool) {
	matches := m.FindMatches(input, books, 1)
	if len(matches) == 0 {
		return domain.BookMatch{}, false
	}
	return matches[0], true
}

// scoreBook applies the tiers in order and returns the first (highest) one
// that fires.
func (m *Matcher) scoreBook(input string, b domain.BookRecord) (domain.BookMatch, bool) {
	name := strings.ToLower(b.Name)
	short := strings.ToLower(b.ShortName)

	if input == name {
		return newMatch(b, exactScore, domain.MatchExact, b.Name), true
	}
	if input == short {
		return newMatch(b, exactScore, domain.MatchExact, b.ShortName), true
	}

	if id, ok := m.abbrev[input]; ok && id == b.ID {
		return newMatch(b, abbreviationScore, domain.MatchAbbreviation, input), true
	}

	if strings.HasPrefix(name, input) {
		return newMatch(b, prefixScore(input, name, short), domain.MatchPrefix, b.Name), true
	}
	if strings.HasPrefix(short, input) {
		return newMatch(b, prefixScore(input, name, short), domain.MatchPrefix, b.ShortName), true
	}

	if score, text, ok := substringScore(input, b); ok {
		return newMatch(b, score, domain.MatchSubstring, text), true
	}

	simName := Similarity(input, name)
	simShort := Similarity(input, short)
	sim, text := simName, b.Name
	if simShort > sim {
		sim, text = simShort, b.ShortName
	}
	if sim > m.minSimilarity {
		return newMatch(b, int(sim*fuzzyCeiling), domain.MatchFuzzy, text), true
	}

	return domain.BookMatch{}, false
}

// prefixScore grows with the completed fraction of the shorter candidate
// name. The fraction is clamped so a short short-name can never lift a prefix
// match into the abbreviation band.
func prefixScore(input, name, short string) int {
	shortest := len(name)
	if len(short) < shortest {
		shortest = len(short)
	}
	frac := float64(len(input)) / float64(shortest)
	if frac > 1 {
		frac = 1
	}
	return prefixBase + int(frac*float64(prefixCeiling-prefixBase))
}

// substringScore rewards an earlier match position and a longer match
// relative to the candidate, capped at the band ceiling. Position zero is a
// prefix and handled before this tier.
func substringScore(input string, b domain.BookRecord) (int, string, bool) {
	best := 0
	text := ""
	for _, candidate := range []string{b.Name, b.ShortName} {
		lowered := strings.ToLower(candidate)
		idx := strings.Index(lowered, input)
		if idx <= 0 {
			continue
		}
		span := float64(len(lowered))
		bonus := (1-float64(idx)/span)*25 + float64(len(input))/span*25
		score := substringBase + int(bonus)
		if score > substringCeiling {
			score = substringCeiling
		}
		if score > best {
			best = score
			text = candidate
		}
	}
	if best == 0 {
		return 0, "", false
	}
	return best, text, true
}

func newMatch(b domain.BookRecord, score int, t domain.MatchType, text string) domain.BookMatch {
	return domain.BookMatch{
		Book:        b,
		Score:       score,
		Type:        t,
		MatchedText: text,
	}
}
