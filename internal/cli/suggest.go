package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"scriptureref/internal/adapter/catalog"
	"scriptureref/internal/adapter/matcher"
	"scriptureref/internal/canon"
	"scriptureref/internal/domain"
	"scriptureref/internal/usecase"
)

var (
	suggestLimit int
	suggestJSON  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Suggest completions for partial input",
	Long: `Generate ranked autocomplete suggestions for a partially typed
reference, the same way an input field would on every keystroke.
Once the input resolves a book and trailing digits, suggestions switch
to chapter and verse completions.

Examples:
  scriptureref suggest "jo"
  scriptureref suggest "1 co" --limit 5
  scriptureref suggest "John 3:16"`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "max suggestions (default from config)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	cat := catalog.NewStatic()
	m := matcher.New(canon.AbbreviationIndex(), cfg.Matcher.FuzzyMinSimilarity)
	suggester := usecase.NewSuggestUseCase(m, cat, cfg.Suggest.TopBooks, cfg.Matcher.ConfidentScore)

	limit := cfg.Suggest.Limit
	if suggestLimit > 0 {
		limit = suggestLimit
	}

	// A resolved book with trailing digits switches to completion mode.
	var suggestions []domain.Suggestion
	ref := newParser(cfg).Parse(args[0], cat.ListBooks())
	if ref.IsValid && ref.Book != nil && ref.Chapter != nil {
		suggestions = suggester.Complete(*ref.Book, args[0])
	} else {
		suggestions = suggester.Suggest(args[0], limit)
	}

	if suggestJSON {
		data, _ := json.MarshalIndent(suggestions, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}
	for i, s := range suggestions {
		fmt.Printf("%2d. %-24s %-12s %4d\n", i+1, s.Text, s.Kind, s.Score)
	}
	return nil
}
