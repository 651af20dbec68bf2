package tokenizer

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"

	"robotreadme/internal/domain"
)

// OfflineTokenizer uses the BPE vocabularies embedded by tiktoken-go/tokenizer.
type OfflineTokenizer struct {
	name  string
	codec tokenizer.Codec
}

func newOfflineTokenizer(name, encoding string) (*OfflineTokenizer, error) {
	codec, err := tokenizer.Get(tokenizer.Encoding(encoding))
	if err != nil {
		return nil, fmt.Errorf("load embedded encoding %s: %w", encoding, err)
	}
	return &OfflineTokenizer{name: name, codec: codec}, nil
}

func offlineForModel(name string) (*OfflineTokenizer, error) {
	codec, err := tokenizer.ForModel(tokenizer.Model(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnresolved(name), err)
	}
	return &OfflineTokenizer{name: name, codec: codec}, nil
}

func (t *OfflineTokenizer) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (t *OfflineTokenizer) Name() string {
	return t.name
}

func errUnresolved(name string) error {
	return fmt.Errorf("%w: %s", domain.ErrUnknownTokenizer, name)
}
