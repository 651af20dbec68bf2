package usecase

import (
	"context"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"robotreadme/internal/adapter/fs"
	"robotreadme/internal/domain"
	"robotreadme/internal/port"
)

// CompareUseCase compares the token counts of two files, anchored on the first.
type CompareUseCase struct {
	resolver port.TokenizerResolver
	logger   *zap.Logger
}

// NewCompareUseCase creates a new compare use case.
func NewCompareUseCase(resolver port.TokenizerResolver, logger *zap.Logger) *CompareUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompareUseCase{
		resolver: resolver,
		logger:   logger,
	}
}

// CountTokens reads path as UTF-8 text and counts its tokens with tok.
func CountTokens(ctx context.Context, tok port.Tokenizer, path string) (domain.TokenCount, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	text, err := fs.ReadText(path)
	if err != nil {
		return 0, err
	}
	n, err := tok.CountTokens(text)
	if err != nil {
		return 0, fmt.Errorf("tokenize %s: %w", path, err)
	}
	return domain.TokenCount(n), nil
}

// Compare loads the tokenizer named model and compares path2 against path1.
// A zero-token path1 is not an error: the result has StateUndefined.
func (u *CompareUseCase) Compare(ctx context.Context, path1, path2, model string) (*domain.ComparisonResult, error) {
	tok, err := u.resolver.Resolve(model)
	if err != nil {
		return nil, err
	}
	u.logger.Debug("tokenizer loaded", zap.String("model", model), zap.String("name", tok.Name()))

	var tokens1, tokens2 domain.TokenCount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := CountTokens(gctx, tok, path1)
		tokens1 = n
		return err
	})
	g.Go(func() error {
		n, err := CountTokens(gctx, tok, path2)
		tokens2 = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	delta, state := Classify(tokens1, tokens2)
	u.logger.Debug("comparison computed",
		zap.String("file1", path1),
		zap.String("file2", path2),
		zap.Int("tokens1", int(tokens1)),
		zap.Int("tokens2", int(tokens2)),
		zap.Stringer("state", state),
	)

	return &domain.ComparisonResult{
		Path1:   path1,
		Path2:   path2,
		Model:   tok.Name(),
		Tokens1: tokens1,
		Tokens2: tokens2,
		Delta:   delta,
		State:   state,
	}, nil
}

// Classify computes (tokens2/tokens1 - 1) * 100 and its direction.
// tokens1 == 0 yields StateUndefined and a zero delta.
func Classify(tokens1, tokens2 domain.TokenCount) (float64, domain.ComparisonState) {
	if tokens1 == 0 {
		return 0, domain.StateUndefined
	}

	delta := (float64(tokens2)/float64(tokens1) - 1) * 100
	switch {
	case delta > 0:
		return delta, domain.StateLarger
	case delta < 0:
		return delta, domain.StateSmaller
	}
	return 0, domain.StateEqual
}

// Verdict returns the sentence describing the comparison.
func Verdict(r *domain.ComparisonResult) string {
	switch r.State {
	case domain.StateLarger:
		return fmt.Sprintf("%s is %.2f%% larger than %s.", r.Path2, r.Delta, r.Path1)
	case domain.StateSmaller:
		return fmt.Sprintf("%s is %.2f%% smaller than %s.", r.Path2, math.Abs(r.Delta), r.Path1)
	case domain.StateUndefined:
		return fmt.Sprintf("Cannot compute percentage change because %s has 0 tokens.", r.Path1)
	}
	return "Both files have the same token count."
}

// WriteReport prints both token counts followed by the verdict.
func WriteReport(w io.Writer, r *domain.ComparisonResult) error {
	_, err := fmt.Fprintf(w, "Token count in %s: %d\nToken count in %s: %d\n%s\n",
		r.Path1, r.Tokens1, r.Path2, r.Tokens2, Verdict(r))
	return err
}
