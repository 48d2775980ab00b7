package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"scriptureref/config"
	"scriptureref/internal/adapter/fs"
	"scriptureref/internal/usecase"
)

var ingestVersion string

var ingestCmd = &cobra.Command{
	Use:   "ingest [path]",
	Short: "Load verse files into the store",
	Long: `Parse plain-text verse files (one verse per line, "John 3:16 text...")
under the given path and store them for lookup and validation.
The store lives in .scriptureref/ within the root directory.

Examples:
  scriptureref ingest ./translations/kjv --version kjv
  scriptureref ingest web.txt --version web`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestVersion, "version", "", "version ID to store under (default from config)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	// Determine path to ingest
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	cfg := GetConfig()

	if err := config.EnsureConfigDir(GetRootDir()); err != nil {
		return fmt.Errorf("failed to create .scriptureref directory: %w", err)
	}

	st, err := openStore(cfg, GetRootDir())
	if err != nil {
		return fmt.Errorf("failed to open verse store: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Ingest.Includes, cfg.Ingest.Excludes)
	ingestUC := usecase.NewIngestUseCase(st, walker)

	version := ingestVersion
	if version == "" {
		version = cfg.Store.DefaultVersion
	}

	fmt.Printf("Scanning %s...\n", path)

	// Progress bar is created once the walker reports a total.
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	progress := func(done, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Ingesting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := ingestUC.Ingest(cmd.Context(), path, version, progress)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	fmt.Printf("\nIngest complete:\n")
	fmt.Printf("  Files read:     %d\n", result.FilesRead)
	fmt.Printf("  Verses parsed:  %d\n", result.LinesParsed)
	fmt.Printf("  Lines skipped:  %d\n", result.LinesSkipped)
	fmt.Printf("  Chapters saved: %d\n", result.ChaptersSaved)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nStored as version %q at: %s\n", version, cfg.StorePath(GetRootDir()))
	return nil
}
