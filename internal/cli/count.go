package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"robotreadme/internal/adapter/fs"
	"robotreadme/internal/usecase"
)

var (
	countModel    string
	countIncludes []string
	countExcludes []string
	countQuiet    bool
)

var countCmd = &cobra.Command{
	Use:   "count [path]",
	Short: "Count tokens for every file under a directory",
	Long: `Walk a directory, count tokens for each matching file and print a
per-file table with the total. Files are selected by the include and
exclude globs from the config, or by the flags below.

Examples:
  robotreadme count .
  robotreadme count docs --include "**/*.md" --model cl100k_base`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringVarP(&countModel, "model", "m", "", "tokenizer name (default from config)")
	countCmd.Flags().StringSliceVar(&countIncludes, "include", nil, "include glob (repeatable, default from config)")
	countCmd.Flags().StringSliceVar(&countExcludes, "exclude", nil, "exclude glob (repeatable, default from config)")
	countCmd.Flags().BoolVarP(&countQuiet, "quiet", "q", false, "hide the progress bar")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}

	includes := cfg.Count.Includes
	if len(countIncludes) > 0 {
		includes = countIncludes
	}
	excludes := cfg.Count.Excludes
	if len(countExcludes) > 0 {
		excludes = countExcludes
	}

	resolver, closeFn, err := newResolver(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	tok, err := resolver.Resolve(modelOrDefault(countModel))
	if err != nil {
		return err
	}

	countUC := usecase.NewCountUseCase(fs.NewWalker(includes, excludes), tok, GetLogger())

	var progress usecase.ProgressFunc
	if !countQuiet {
		var (
			bar  *progressbar.ProgressBar
			once sync.Once
		)
		progress = func(processed, total int, currentFile string) {
			once.Do(func() {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionEnableColorCodes(true),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("[cyan]Counting[reset]"),
					progressbar.OptionSetTheme(progressbar.Theme{
						Saucer:        "[green]=[reset]",
						SaucerHead:    "[green]>[reset]",
						SaucerPadding: " ",
						BarStart:      "[",
						BarEnd:        "]",
					}),
					progressbar.OptionOnCompletion(func() {
						fmt.Fprintln(os.Stderr)
					}),
				)
			})
			bar.Set(processed)
		}
	}

	result, err := countUC.Count(cmd.Context(), root, progress)
	if err != nil {
		return fmt.Errorf("counting failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, row := range result.Files {
		rel, relErr := filepath.Rel(root, row.Path)
		if relErr != nil {
			rel = row.Path
		}
		if row.Err != nil {
			fmt.Fprintf(out, "%10s  %s (%v)\n", "error", rel, row.Err)
			continue
		}
		fmt.Fprintf(out, "%10d  %s\n", row.Tokens, rel)
	}
	fmt.Fprintf(out, "%10d  total (%d files, tokenizer %s)\n", result.Total, len(result.Files)-result.Failed, tok.Name())

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files could not be counted", result.Failed, len(result.Files))
	}
	return nil
}
