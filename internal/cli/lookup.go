package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"scriptureref/internal/adapter/bounds"
	"scriptureref/internal/adapter/catalog"
	"scriptureref/internal/domain"
	"scriptureref/internal/usecase"
)

var (
	lookupVersion string
	lookupJSON    bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <reference>",
	Short: "Show verse text for a reference",
	Long: `Parse and validate a reference, then print the matching verse text
from the ingested data.

Examples:
  scriptureref lookup "John 3:16"
  scriptureref lookup "jn 3:16-17" --version web
  scriptureref lookup "Psalms 23"        # whole chapter`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupVersion, "version", "", "Bible version (default from config)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := requireStore(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	parser := newParser(cfg)
	cat := catalog.NewStatic()
	resolver := usecase.NewResolveUseCase(parser, bounds.New(st, cfg.Bounds.FallbackVerses, cfg.Bounds.Capacity, nil), cat)

	version := lookupVersion
	if version == "" {
		version = cfg.Store.DefaultVersion
	}

	ref, result, err := resolver.Resolve(cmd.Context(), args[0], version)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if !result.IsValid {
		msg := result.Error
		if msg == "" {
			msg = "invalid reference"
		}
		if result.AutoCorrection != nil {
			return fmt.Errorf("%s (try %q)", msg, result.AutoCorrection.String())
		}
		return fmt.Errorf("%s", msg)
	}
	if ref.Chapter == nil {
		return fmt.Errorf("give at least a chapter, e.g. %q", ref.Book.Name+" 1")
	}

	verses, err := st.GetVerses(cmd.Context(), version, ref.Book.ID, *ref.Chapter)
	if err != nil {
		return fmt.Errorf("failed to read verses: %w", err)
	}
	if len(verses) == 0 {
		return fmt.Errorf("no verses stored for %s %d in %s", ref.Book.Name, *ref.Chapter, version)
	}

	// A chapter-only reference prints the whole chapter.
	selected := verses
	if ref.VerseStart != nil {
		start := *ref.VerseStart
		end := start
		if ref.VerseEnd != nil {
			end = *ref.VerseEnd
		}
		filtered := make([]domain.Verse, 0, end-start+1)
		for _, v := range verses {
			if v.Number >= start && v.Number <= end {
				filtered = append(filtered, v)
			}
		}
		selected = filtered
	}

	if lookupJSON {
		out := struct {
			Reference domain.ParsedReference `json:"reference"`
			Version   string                 `json:"version"`
			Verses    []domain.Verse         `json:"verses"`
		}{ref, version, selected}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s (%s)\n", ref, version)
	for _, v := range selected {
		fmt.Printf("%4d  %s\n", v.Number, v.Text)
	}
	return nil
}
