package usecase

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"robotreadme/internal/adapter/fs"
	"robotreadme/internal/port"
)

//go:embed templates/*.txt
var promptTemplates embed.FS

var askTemplate = template.Must(
	template.New("ask_prompt.txt").
		Funcs(template.FuncMap{"trim": strings.TrimSpace}).
		ParseFS(promptTemplates, "templates/ask_prompt.txt"),
)

// PromptData feeds the ask prompt template.
type PromptData struct {
	Content     string
	Instruction string
}

// BuildPrompt appends instruction to the text of inputPath, both trimmed and
// joined by a single newline.
func BuildPrompt(inputPath, instruction string) (string, error) {
	text, err := fs.ReadText(inputPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := askTemplate.Execute(&buf, PromptData{Content: text, Instruction: instruction}); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// AskUseCase sends prompts to a chat model.
type AskUseCase struct {
	model        port.ChatModel
	systemPrompt string
	logger       *zap.Logger
}

// NewAskUseCase creates a new ask use case.
func NewAskUseCase(model port.ChatModel, systemPrompt string, logger *zap.Logger) *AskUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskUseCase{
		model:        model,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Ask submits prompt as the user message and returns the reply.
func (u *AskUseCase) Ask(ctx context.Context, prompt string) (string, error) {
	u.logger.Info("sending prompt",
		zap.String("model", u.model.ModelName()),
		zap.Int("prompt_bytes", len(prompt)),
	)
	reply, err := u.model.Complete(ctx, u.systemPrompt, prompt)
	if err != nil {
		return "", err
	}
	u.logger.Info("received reply", zap.Int("reply_bytes", len(reply)))
	return reply, nil
}

// SaveResponse writes text to path. Empty text writes nothing and reports false.
func SaveResponse(path, text string) (bool, error) {
	if text == "" {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return false, fmt.Errorf("failed to save response: %w", err)
	}
	return true, nil
}
