package chat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIChat is a chat-completion client for OpenAI-compatible services.
type OpenAIChat struct {
	client    openai.Client
	model     string
	maxTokens int
}

// Options configures NewOpenAIChat.
type Options struct {
	APIKeyEnv           string
	Model               string
	BaseURL             string
	MaxCompletionTokens int
	Timeout             time.Duration
}

// NewOpenAIChat reads the API key from opts.APIKeyEnv. Requests are never retried.
func NewOpenAIChat(opts Options) (*OpenAIChat, error) {
	apiKey := os.Getenv(opts.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", opts.APIKeyEnv)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}

	return &OpenAIChat{
		client:    openai.NewClient(reqOpts...),
		model:     opts.Model,
		maxTokens: opts.MaxCompletionTokens,
	}, nil
}

// Complete sends one system and one user message and returns the trimmed reply.
func (c *OpenAIChat) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model: openai.ChatModel(c.model),
		N:     openai.Int(1),
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.maxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (c *OpenAIChat) ModelName() string {
	return c.model
}
