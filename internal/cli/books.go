package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"scriptureref/internal/adapter/catalog"
	"scriptureref/internal/domain"
)

var (
	booksTestament string
	booksJSON      bool
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the canonical books",
	Long: `List the canonical books with their short names, testament and
chapter counts.

Examples:
  scriptureref books
  scriptureref books --testament nt`,
	RunE: runBooks,
}

func init() {
	rootCmd.AddCommand(booksCmd)
	booksCmd.Flags().StringVarP(&booksTestament, "testament", "t", "", "filter by testament (ot or nt)")
	booksCmd.Flags().BoolVar(&booksJSON, "json", false, "output as JSON")
}

func runBooks(cmd *cobra.Command, args []string) error {
	books := catalog.NewStatic().ListBooks()

	if booksTestament != "" {
		want := domain.Testament(strings.ToUpper(booksTestament))
		if want != domain.OldTestament && want != domain.NewTestament {
			return fmt.Errorf("unknown testament %q (use ot or nt)", booksTestament)
		}
		filtered := books[:0]
		for _, b := range books {
			if b.Testament == want {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	if booksJSON {
		data, _ := json.MarshalIndent(books, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	for _, b := range books {
		fmt.Printf("%2d. %-18s %-5s %s  %3d chapters\n", b.Order, b.Name, b.ShortName, b.Testament, b.ChapterCount)
	}
	return nil
}
