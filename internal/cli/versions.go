package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scriptureref/internal/port"
)

var versionsDelete string

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List ingested Bible versions",
	Long: `List the version IDs available in the verse store, or delete one.

Examples:
  scriptureref versions
  scriptureref versions --delete asv`,
	RunE: runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().StringVar(&versionsDelete, "delete", "", "delete the given version")
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := requireStore(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	if versionsDelete != "" {
		err := st.DeleteVersion(cmd.Context(), versionsDelete)
		if errors.Is(err, port.ErrVersionNotFound) {
			return fmt.Errorf("no version %q in the store", versionsDelete)
		}
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", versionsDelete, err)
		}
		fmt.Printf("Deleted version %q.\n", versionsDelete)
		return nil
	}

	versions, err := st.ListVersions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list versions: %w", err)
	}
	if len(versions) == 0 {
		fmt.Println("No versions ingested yet.")
		return nil
	}
	for _, v := range versions {
		marker := " "
		if v == cfg.Store.DefaultVersion {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, v)
	}
	return nil
}
