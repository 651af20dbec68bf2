package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"robotreadme/internal/adapter/congress"
	"robotreadme/internal/usecase"
)

var (
	congressBill  string
	congressQuery string
	congressLimit int
)

var congressCmd = &cobra.Command{
	Use:   "congress",
	Short: "Explore bills, summaries and laws from congress.gov",
	Long: `Query the congress.gov v3 API. Without flags, shows a historical
cornerstone bill, recent bills matching the configured search and the
laws of the 1st Congress. The API key is read from CONGRESS_API_KEY.

Examples:
  robotreadme congress
  robotreadme congress --query "wildfire prevention" --limit 5
  robotreadme congress --bill 118/hr/1`,
	Args: cobra.NoArgs,
	RunE: runCongress,
}

func init() {
	rootCmd.AddCommand(congressCmd)
	congressCmd.Flags().StringVar(&congressBill, "bill", "", "show a single bill, e.g. 118/hr/1")
	congressCmd.Flags().StringVarP(&congressQuery, "query", "q", "", "summary search text (default from config)")
	congressCmd.Flags().IntVarP(&congressLimit, "limit", "n", 0, "results per section (default from config)")
}

func runCongress(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	client, err := congress.NewClient(congress.Options{
		BaseURL:        cfg.Congress.BaseURL,
		APIKeyEnv:      cfg.Congress.APIKeyEnv,
		RequestsPerSec: cfg.Congress.RequestsPerSec,
		Timeout:        time.Duration(cfg.Congress.TimeoutSeconds) * time.Second,
		Logger:         GetLogger(),
	})
	if err != nil {
		return err
	}

	congressUC := usecase.NewCongressUseCase(client, cmd.OutOrStdout(), cfg.Congress.SummaryChars, GetLogger())

	if congressBill != "" {
		ref, err := usecase.ParseBillRef(congressBill)
		if err != nil {
			return err
		}
		return congressUC.ShowBill(cmd.Context(), ref)
	}

	query := cfg.Congress.Query
	if congressQuery != "" {
		query = congressQuery
	}
	limit := cfg.Congress.Limit
	if congressLimit > 0 {
		limit = congressLimit
	}

	failed, err := congressUC.Explore(cmd.Context(), query, limit)
	if err != nil {
		return err
	}
	if failed > 0 {
		GetLogger().Warn("some sections failed", zap.Int("failed", failed))
	}
	return nil
}
