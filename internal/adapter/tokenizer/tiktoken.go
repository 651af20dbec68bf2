package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// RemoteTokenizer adapts tiktoken-go. Encoding files are downloaded on first
// use and cached under TIKTOKEN_CACHE_DIR.
type RemoteTokenizer struct {
	name string
	enc  *tiktoken.Tiktoken
}

func newRemoteTokenizer(name, encoding string) (*RemoteTokenizer, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("init tiktoken encoding %s: %w", encoding, err)
	}
	return &RemoteTokenizer{name: name, enc: enc}, nil
}

func remoteForModel(name string) (*RemoteTokenizer, error) {
	enc, err := tiktoken.EncodingForModel(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnresolved(name), err)
	}
	return &RemoteTokenizer{name: name, enc: enc}, nil
}

func (t *RemoteTokenizer) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}

func (t *RemoteTokenizer) Name() string {
	return t.name
}
