package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"scriptureref/config"
	"scriptureref/internal/adapter/matcher"
	"scriptureref/internal/adapter/memstore"
	"scriptureref/internal/adapter/refparse"
	"scriptureref/internal/adapter/versestore"
	"scriptureref/internal/canon"
	"scriptureref/internal/logging"
	"scriptureref/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "scriptureref",
	Short: "Scripture reference parser, validator and autocomplete engine",
	Long: `scriptureref turns free-form text like "jn 3:16-17" or "Pslam 23" into
validated scripture references, suggests completions while you type, and
looks up verse text from locally ingested translations.

Example usage:
  scriptureref parse "jn 3:16-17"            # Parse a reference
  scriptureref suggest "1 co"                # Autocomplete partial input
  scriptureref ingest ./kjv --version kjv    # Load verse files
  scriptureref lookup "John 3:16"            # Show verse text`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Init(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./scriptureref.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// newParser builds the reference parser from the loaded config.
func newParser(cfg *config.Config) *refparse.Parser {
	m := matcher.New(canon.AbbreviationIndex(), cfg.Matcher.FuzzyMinSimilarity)
	return refparse.New(m, cfg.Matcher.ConfidentScore)
}

// openStore opens the configured verse store.
func openStore(cfg *config.Config, dir string) (port.VerseStore, error) {
	switch cfg.Store.Driver {
	case "", "bolt":
		return versestore.NewBoltStore(cfg.StorePath(dir))
	case "sqlite":
		return versestore.NewSQLiteStore(cfg.StorePath(dir))
	case "memory":
		return memstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// requireStore opens the store only if verse data has been ingested.
func requireStore(cfg *config.Config, dir string) (port.VerseStore, error) {
	if cfg.Store.Driver != "memory" && cfg.Store.Path == "" {
		if _, err := os.Stat(cfg.StorePath(dir)); os.IsNotExist(err) {
			return nil, fmt.Errorf("no verse data found. Run 'scriptureref ingest' first")
		}
	}
	return openStore(cfg, dir)
}
