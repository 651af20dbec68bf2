package cli

import (
	"github.com/spf13/cobra"

	"robotreadme/internal/usecase"
)

var compareModel string

var compareCmd = &cobra.Command{
	Use:   "compare <file1> <file2>",
	Short: "Compare token counts of two files",
	Long: `Count the tokens of two text files with the same tokenizer and report
how much larger or smaller file2 is relative to file1.

Examples:
  robotreadme compare old.txt new.txt
  robotreadme compare a.md b.md --model cl100k_base`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareModel, "model", "m", "", "tokenizer name (default gpt2)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	resolver, closeFn, err := newResolver(GetConfig())
	if err != nil {
		return err
	}
	defer closeFn()

	compareUC := usecase.NewCompareUseCase(resolver, GetLogger())
	result, err := compareUC.Compare(cmd.Context(), args[0], args[1], modelOrDefault(compareModel))
	if err != nil {
		return err
	}

	return usecase.WriteReport(cmd.OutOrStdout(), result)
}
