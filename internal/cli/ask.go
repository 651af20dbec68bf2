package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"robotreadme/internal/adapter/chat"
	"robotreadme/internal/usecase"
)

var (
	askOutput      string
	askInstruction string
	askModel       string
	askDryRun      bool
)

var askCmd = &cobra.Command{
	Use:   "ask <input-file>",
	Short: "Send a file plus an instruction to a chat model",
	Long: `Build a prompt from the trimmed contents of a file followed by an
instruction line, send it to an OpenAI-compatible chat model and save the
reply. The API key is read from the environment variable named in the
config (OPENAI_API_KEY by default).

Examples:
  robotreadme ask llm.txt
  robotreadme ask llm.txt --dry-run
  robotreadme ask llm.txt --instruction "summarize the endpoints" -o reply.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askOutput, "output", "o", "", "file to save the reply (default from config)")
	askCmd.Flags().StringVar(&askInstruction, "instruction", "", "instruction appended to the input (default from config)")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "chat model (default from config)")
	askCmd.Flags().BoolVar(&askDryRun, "dry-run", false, "print the prompt and its token count without sending it")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	instruction := cfg.Ask.Instruction
	if askInstruction != "" {
		instruction = askInstruction
	}
	model := cfg.Ask.Model
	if askModel != "" {
		model = askModel
	}
	output := cfg.Ask.Output
	if askOutput != "" {
		output = askOutput
	}

	prompt, err := usecase.BuildPrompt(args[0], instruction)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "--- Prompt sent to OpenAI ---")
	fmt.Fprintln(out, prompt)

	if askDryRun {
		resolver, closeFn, err := newResolver(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		tok, err := resolver.Resolve(model)
		if err != nil {
			return err
		}
		n, err := tok.CountTokens(prompt)
		if err != nil {
			return fmt.Errorf("failed to count prompt tokens: %w", err)
		}
		fmt.Fprintf(out, "--- Prompt tokens (%s): %d ---\n", tok.Name(), n)
		return nil
	}

	client, err := chat.NewOpenAIChat(chat.Options{
		APIKeyEnv:           cfg.Ask.APIKeyEnv,
		Model:               model,
		BaseURL:             cfg.Ask.BaseURL,
		MaxCompletionTokens: cfg.Ask.MaxCompletionTokens,
		Timeout:             time.Duration(cfg.Ask.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	askUC := usecase.NewAskUseCase(client, cfg.Ask.SystemPrompt, GetLogger())
	reply, err := askUC.Ask(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("error communicating with OpenAI API: %w", err)
	}

	fmt.Fprintln(out, "\n--- OpenAI Response ---")
	fmt.Fprintln(out, reply)

	saved, err := usecase.SaveResponse(output, reply)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Fprintln(out, "No response text to save.")
		return nil
	}
	fmt.Fprintf(out, "API response saved to: %s\n", output)
	return nil
}
