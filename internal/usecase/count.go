package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"robotreadme/internal/domain"
	"robotreadme/internal/port"
)

// CountUseCase counts tokens over every file a walker selects.
type CountUseCase struct {
	walker port.FileWalker
	tok    port.Tokenizer
	logger *zap.Logger
}

// NewCountUseCase creates a new count use case.
func NewCountUseCase(walker port.FileWalker, tok port.Tokenizer, logger *zap.Logger) *CountUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CountUseCase{
		walker: walker,
		tok:    tok,
		logger: logger,
	}
}

// CountResult contains the results of a batch count.
type CountResult struct {
	Files  []domain.FileCount
	Total  domain.TokenCount
	Failed int
}

// ProgressFunc is called after each file is processed.
type ProgressFunc func(processed, total int, currentFile string)

// Count walks root and counts tokens per file. Per-file failures are recorded
// on the row and do not stop the walk.
func (u *CountUseCase) Count(ctx context.Context, root string, progress ProgressFunc) (*CountResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	u.logger.Debug("files selected", zap.String("root", root), zap.Int("files", len(files)))

	return u.CountFiles(ctx, paths(files), progress)
}

// CountFiles counts tokens for an explicit list of paths.
func (u *CountUseCase) CountFiles(ctx context.Context, files []string, progress ProgressFunc) (*CountResult, error) {
	result := &CountResult{Files: make([]domain.FileCount, 0, len(files))}

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := CountTokens(ctx, u.tok, path)
		row := domain.FileCount{Path: path, Tokens: n, Err: err}
		if err != nil {
			u.logger.Warn("count failed", zap.String("path", path), zap.Error(err))
			result.Failed++
		} else {
			result.Total += n
		}
		result.Files = append(result.Files, row)

		if progress != nil {
			progress(i+1, len(files), path)
		}
	}

	return result, nil
}

func paths(files []port.FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
