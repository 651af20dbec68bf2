package port

import "context"

// ChatModel represents a chat-completion language model.
type ChatModel interface {
	// Complete sends a system and user message pair and returns the reply text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model.
	ModelName() string
}
