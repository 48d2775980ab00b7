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
	parseValidate bool
	parseVersion  string
	parseJSON     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <reference>",
	Short: "Parse a scripture reference",
	Long: `Parse free-form text into a structured scripture reference.
With --validate, chapter and verse numbers are also checked against the
ingested verse data and an auto-correction is proposed when out of range.

Examples:
  scriptureref parse "jn 3:16-17"
  scriptureref parse "Pslam 23"
  scriptureref parse "Genesis 51:1" --validate`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "check chapter and verse bounds")
	parseCmd.Flags().StringVar(&parseVersion, "version", "", "Bible version to validate against (default from config)")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output as JSON")
}

// parseOutput is the JSON shape of a parse command run.
type parseOutput struct {
	Input      string                   `json:"input"`
	Reference  domain.ParsedReference   `json:"reference"`
	Validation *domain.ValidationResult `json:"validation,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	parser := newParser(cfg)
	cat := catalog.NewStatic()

	out := parseOutput{Input: args[0]}
	out.Reference = parser.Parse(args[0], cat.ListBooks())

	if parseValidate {
		st, err := requireStore(cfg, GetRootDir())
		if err != nil {
			return err
		}
		defer st.Close()

		resolver := usecase.NewResolveUseCase(parser, bounds.New(st, cfg.Bounds.FallbackVerses, cfg.Bounds.Capacity, nil), cat)

		version := parseVersion
		if version == "" {
			version = cfg.Store.DefaultVersion
		}

		result, err := resolver.Validate(cmd.Context(), out.Reference, version)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		out.Validation = &result
	}

	if parseJSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	printReference(out.Reference)
	if out.Validation != nil {
		printValidation(*out.Validation)
	}
	return nil
}

func printReference(ref domain.ParsedReference) {
	if ref.Book != nil {
		fmt.Printf("Resolved:  %s\n", ref)
	}
	fmt.Printf("Valid:     %v\n", ref.IsValid)
	fmt.Printf("Complete:  %v\n", ref.IsComplete)
	if ref.Error != "" {
		fmt.Printf("Error:     %s\n", ref.Error)
	}
}

func printValidation(result domain.ValidationResult) {
	if result.IsValid {
		fmt.Println("Bounds:    ok")
		return
	}
	fmt.Printf("Bounds:    %s\n", result.Error)
	if result.AutoCorrection != nil {
		fmt.Printf("Try:       %s\n", result.AutoCorrection)
	}
}
