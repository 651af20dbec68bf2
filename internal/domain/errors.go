package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownTokenizer is returned when no factory matches a tokenizer name.
var ErrUnknownTokenizer = errors.New("unknown tokenizer")

// FileAccessError reports an input that could not be opened or decoded.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// TokenizerLoadError reports a tokenizer name that could not be resolved.
type TokenizerLoadError struct {
	Model string
	Err   error
}

func (e *TokenizerLoadError) Error() string {
	return fmt.Sprintf("failed to load tokenizer %q: %v", e.Model, e.Err)
}

func (e *TokenizerLoadError) Unwrap() error {
	return e.Err
}
