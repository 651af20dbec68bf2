package tokenizer

import (
	"fmt"
	"sort"
	"strings"

	"robotreadme/internal/domain"
	"robotreadme/internal/port"
)

// DefaultModel is the tokenizer used when no name is given.
const DefaultModel = "gpt2"

// Backend selects where BPE vocabularies come from.
type Backend string

const (
	// BackendRemote downloads encoding files on first use and caches them.
	BackendRemote Backend = "remote"
	// BackendOffline uses vocabularies embedded in the binary.
	BackendOffline Backend = "offline"
)

// ParseBackend validates a backend name. Empty selects BackendRemote.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendRemote:
		return BackendRemote, nil
	case BackendOffline:
		return BackendOffline, nil
	}
	return "", fmt.Errorf("unsupported tokenizer backend: %s", s)
}

// Factory builds a tokenizer registered under name.
type Factory func(name string) (port.Tokenizer, error)

// encodings maps model names to the BPE encoding they use.
var encodings = map[string]string{
	"gpt2":                   "r50k_base",
	"r50k_base":              "r50k_base",
	"davinci":                "r50k_base",
	"p50k_base":              "p50k_base",
	"text-davinci-002":       "p50k_base",
	"text-davinci-003":       "p50k_base",
	"code-davinci-002":       "p50k_base",
	"cl100k_base":            "cl100k_base",
	"gpt-4":                  "cl100k_base",
	"gpt-4-turbo":            "cl100k_base",
	"gpt-3.5-turbo":          "cl100k_base",
	"text-embedding-ada-002": "cl100k_base",
	"text-embedding-3-small": "cl100k_base",
	"text-embedding-3-large": "cl100k_base",
	"o200k_base":             "o200k_base",
	"gpt-4o":                 "o200k_base",
	"gpt-4o-mini":            "o200k_base",
	"o1":                     "o200k_base",
	"o1-mini":                "o200k_base",
	"o3-mini":                "o200k_base",
}

// Registry resolves tokenizer names to tokenizers.
type Registry struct {
	backend   Backend
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in tokenizers.
func NewRegistry(backend Backend) *Registry {
	r := &Registry{
		backend:   backend,
		factories: make(map[string]Factory),
	}

	bpe := r.bpeFactory()
	for name := range encodings {
		r.Register(name, bpe)
	}
	r.Register("whitespace", func(name string) (port.Tokenizer, error) {
		return NewWhitespaceTokenizer(), nil
	})
	r.Register("words", func(name string) (port.Tokenizer, error) {
		return NewWordTokenizer(), nil
	})
	r.Register("estimate", func(name string) (port.Tokenizer, error) {
		return NewEstimatingTokenizer(DefaultCharsPerToken), nil
	})

	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[strings.ToLower(name)] = f
}

// Names returns the registered tokenizer names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve loads the tokenizer identified by name. Names without a registered
// factory are looked up in the backend's own model table. Any failure is a
// *domain.TokenizerLoadError.
func (r *Registry) Resolve(name string) (port.Tokenizer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultModel
	}

	var (
		tok port.Tokenizer
		err error
	)
	if f, ok := r.factories[strings.ToLower(name)]; ok {
		tok, err = f(name)
	} else {
		tok, err = r.forModel(name)
	}
	if err != nil {
		return nil, &domain.TokenizerLoadError{Model: name, Err: err}
	}
	return tok, nil
}

func (r *Registry) bpeFactory() Factory {
	return func(name string) (port.Tokenizer, error) {
		encoding := encodings[strings.ToLower(name)]
		if r.backend == BackendOffline {
			return newOfflineTokenizer(name, encoding)
		}
		return newRemoteTokenizer(name, encoding)
	}
}

func (r *Registry) forModel(name string) (port.Tokenizer, error) {
	if r.backend == BackendOffline {
		return offlineForModel(name)
	}
	return remoteForModel(name)
}
