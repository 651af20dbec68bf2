package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"robotreadme/internal/adapter/store"
)

var cacheClear bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show or clear the persistent token count cache",
	Long: `Report where the token count cache lives, its schema version and how
many counts it holds. With --clear, drop every cached count.

Examples:
  robotreadme cache
  robotreadme cache --clear`,
	Args: cobra.NoArgs,
	RunE: runCache,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.Flags().BoolVar(&cacheClear, "clear", false, "remove all cached counts")
}

func runCache(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	dbPath, err := cfg.CacheDBPath()
	if err != nil {
		return fmt.Errorf("failed to locate count cache: %w", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintf(out, "No count cache at %s\n", dbPath)
		return nil
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open count cache: %w", err)
	}
	defer st.Close()

	n, err := st.Len()
	if err != nil {
		return fmt.Errorf("failed to read count cache: %w", err)
	}

	if cacheClear {
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear count cache: %w", err)
		}
		fmt.Fprintf(out, "Cleared %d cached counts from %s\n", n, dbPath)
		return nil
	}

	version, err := st.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Fprintf(out, "Count cache: %s\n", dbPath)
	fmt.Fprintf(out, "  Enabled:        %v\n", cfg.Cache.Enabled)
	fmt.Fprintf(out, "  Schema version: %d\n", version)
	fmt.Fprintf(out, "  Entries:        %d\n", n)
	return nil
}
