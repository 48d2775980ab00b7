package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"scriptureref/internal/adapter/catalog"
	"scriptureref/internal/adapter/matcher"
	"scriptureref/internal/adapter/refparse"
	"scriptureref/internal/canon"
	"scriptureref/internal/usecase"
)

// Simulates a user typing a reference one keystroke at a time and
// measures what the engine costs per keystroke. Parsing, matching and
// suggesting all run synchronously in an input handler, so each call
// has to stay far below the typing rate.
func main() {
	input := flag.String("input", "1 corinthians 13:4-7", "reference to type out")
	rounds := flag.Int("rounds", 1000, "typing sessions to simulate")
	limit := flag.Int("limit", 8, "suggestion limit per keystroke")
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: go run cmd/benchmark/main.go -input \"1 cor 13:4\" -rounds 1000")
		os.Exit(1)
	}

	m := matcher.New(canon.AbbreviationIndex(), matcher.DefaultMinSimilarity)
	parser := refparse.New(m, 800)
	cat := catalog.NewStatic()
	suggester := usecase.NewSuggestUseCase(m, cat, 0, 0)
	books := cat.ListBooks()

	prefixes := keystrokes(*input)

	fmt.Println("KEYSTROKE LATENCY BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Input:   %q (%d keystrokes)\n", *input, len(prefixes))
	fmt.Printf("Rounds:  %d\n", *rounds)
	fmt.Println()

	calls := *rounds * len(prefixes)

	start := time.Now()
	for r := 0; r < *rounds; r++ {
		for _, p := range prefixes {
			parser.Parse(p, books)
		}
	}
	parseElapsed := time.Since(start)

	start = time.Now()
	for r := 0; r < *rounds; r++ {
		for _, p := range prefixes {
			m.FindMatches(p, books, 3)
		}
	}
	matchElapsed := time.Since(start)

	start = time.Now()
	for r := 0; r < *rounds; r++ {
		for _, p := range prefixes {
			suggester.Suggest(p, *limit)
		}
	}
	suggestElapsed := time.Since(start)

	report("parse", parseElapsed, calls)
	report("match", matchElapsed, calls)
	report("suggest", suggestElapsed, calls)

	// An input handler runs parse and suggest on each keystroke.
	perKeystroke := (parseElapsed + suggestElapsed) / time.Duration(calls)

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Per-keystroke cost (parse + suggest): %s\n", perKeystroke)
	switch {
	case perKeystroke < 100*time.Microsecond:
		fmt.Println("Status: GOOD - invisible at typing speed")
	case perKeystroke < time.Millisecond:
		fmt.Println("Status: OK - well under a debounce window")
	default:
		fmt.Println("Status: POOR - too slow for an input handler")
	}
}

// keystrokes returns every prefix of s, one per typed rune.
func keystrokes(s string) []string {
	runes := []rune(s)
	out := make([]string, 0, len(runes))
	for i := 1; i <= len(runes); i++ {
		out = append(out, string(runes[:i]))
	}
	return out
}

func report(name string, elapsed time.Duration, calls int) {
	per := elapsed / time.Duration(calls)
	fmt.Printf("  %-8s %8d calls  %12s total  %12s/call\n", name, calls, elapsed.Round(time.Millisecond), per)
}
