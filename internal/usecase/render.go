package usecase

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"robotreadme/internal/adapter/openapi"
	"robotreadme/internal/port"
)

// RenderUseCase turns an API description into LLM-readable text.
type RenderUseCase struct {
	opts   openapi.RenderOptions
	tok    port.Tokenizer
	logger *zap.Logger
}

// NewRenderUseCase creates a new render use case. tok may be nil, in which
// case no token count is reported.
func NewRenderUseCase(opts openapi.RenderOptions, tok port.Tokenizer, logger *zap.Logger) *RenderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenderUseCase{opts: opts, tok: tok, logger: logger}
}

// RenderResult summarizes a render.
type RenderResult struct {
	Title     string
	Endpoints int
	Bytes     int
	Tokens    int
	Text      string
}

// Render loads specPath, resolves references and renders it. When output is
// non-empty the text is also written there.
func (u *RenderUseCase) Render(specPath, output string) (*RenderResult, error) {
	doc, err := openapi.Load(specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load api spec: %w", err)
	}
	u.logger.Info("loaded api spec",
		zap.String("title", doc.Title),
		zap.String("version", doc.Version),
		zap.Int("endpoints", len(doc.Endpoints)),
	)

	if err := openapi.ResolveReferences(doc); err != nil {
		return nil, fmt.Errorf("failed to resolve references: %w", err)
	}

	text := openapi.RenderText(doc, u.opts)
	result := &RenderResult{
		Title:     doc.Title,
		Endpoints: len(doc.Endpoints),
		Bytes:     len(text),
		Text:      text,
	}

	if u.tok != nil {
		n, err := u.tok.CountTokens(text)
		if err != nil {
			return nil, fmt.Errorf("failed to count tokens: %w", err)
		}
		result.Tokens = n
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0644); err != nil {
			return nil, fmt.Errorf("failed to write output file: %w", err)
		}
		u.logger.Info("wrote summary", zap.String("path", output), zap.Int("bytes", len(text)))
	}

	return result, nil
}
