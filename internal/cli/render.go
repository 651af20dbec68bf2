package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"robotreadme/internal/adapter/openapi"
	"robotreadme/internal/port"
	"robotreadme/internal/usecase"
)

var (
	renderOutput         string
	renderMaxDescription int
	renderNoCount        bool
	renderStdout         bool
)

var renderCmd = &cobra.Command{
	Use:   "render <spec-file>",
	Short: "Render an OpenAPI or Swagger document as LLM-readable text",
	Long: `Load an OpenAPI 3 or Swagger 2 document (JSON or YAML), resolve its
references and write a compact plain-text description of every endpoint.

Examples:
  robotreadme render swagger.json
  robotreadme render openapi.yaml -o api.txt --max-description 500`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default from config)")
	renderCmd.Flags().IntVar(&renderMaxDescription, "max-description", 0, "truncate descriptions to this many characters (default from config)")
	renderCmd.Flags().BoolVar(&renderNoCount, "no-count", false, "skip the token count of the rendered text")
	renderCmd.Flags().BoolVar(&renderStdout, "stdout", false, "print the rendered text instead of writing a file")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	opts := openapi.RenderOptions{MaxDescription: cfg.Render.MaxDescription}
	if renderMaxDescription > 0 {
		opts.MaxDescription = renderMaxDescription
	}
	output := cfg.Render.Output
	if renderOutput != "" {
		output = renderOutput
	}
	if renderStdout {
		output = ""
	}

	var tok port.Tokenizer
	if !renderNoCount {
		resolver, closeFn, err := newResolver(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		if tok, err = resolver.Resolve(modelOrDefault("")); err != nil {
			return err
		}
	}

	renderUC := usecase.NewRenderUseCase(opts, tok, GetLogger())
	result, err := renderUC.Render(args[0], output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if renderStdout {
		fmt.Fprint(out, result.Text)
		return nil
	}

	fmt.Fprintf(out, "Successfully wrote API summary to %s\n", output)
	fmt.Fprintf(out, "  Title:     %s\n", result.Title)
	fmt.Fprintf(out, "  Endpoints: %d\n", result.Endpoints)
	fmt.Fprintf(out, "  Bytes:     %d\n", result.Bytes)
	if tok != nil {
		fmt.Fprintf(out, "  Tokens:    %d (%s)\n", result.Tokens, tok.Name())
	}
	return nil
}
