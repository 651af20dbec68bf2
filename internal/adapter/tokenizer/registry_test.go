package tokenizer

import (
	"errors"
	"testing"

	"robotreadme/internal/domain"
	"robotreadme/internal/port"
)

var (
	_ port.Tokenizer = (*RemoteTokenizer)(nil)
	_ port.Tokenizer = (*OfflineTokenizer)(nil)
	_ port.Tokenizer = (*WhitespaceTokenizer)(nil)
	_ port.Tokenizer = (*WordTokenizer)(nil)
	_ port.Tokenizer = (*EstimatingTokenizer)(nil)
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{"", BackendRemote, false},
		{"remote", BackendRemote, false},
		{"OFFLINE", BackendOffline, false},
		{"hub", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackend(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRegistry_ResolveSimple(t *testing.T) {
	reg := NewRegistry(BackendOffline)

	for _, name := range []string{"whitespace", "words", "estimate", "Whitespace"} {
		tok, err := reg.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", name, err)
		}
		if tok == nil {
			t.Fatalf("Resolve(%q) returned nil tokenizer", name)
		}
	}
}

func TestRegistry_ResolveOfflineGPT2(t *testing.T) {
	reg := NewRegistry(BackendOffline)

	tok, err := reg.Resolve("")
	if err != nil {
		t.Fatalf("Resolve default error: %v", err)
	}
	if tok.Name() != DefaultModel {
		t.Errorf("expected default model %s, got %s", DefaultModel, tok.Name())
	}

	count, err := tok.CountTokens("hello world")
	if err != nil {
		t.Fatalf("CountTokens error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 tokens for 'hello world', got %d", count)
	}

	empty, _ := tok.CountTokens("")
	if empty != 0 {
		t.Errorf("expected 0 tokens for empty text, got %d", empty)
	}
}

func TestRegistry_SpecialTokenTextIsOrdinary(t *testing.T) {
	reg := NewRegistry(BackendOffline)

	tok, err := reg.Resolve("gpt2")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	// special-token markers in file content are counted like any other text
	count, err := tok.CountTokens("<|endoftext|>")
	if err != nil {
		t.Fatalf("CountTokens error: %v", err)
	}
	if count <= 1 {
		t.Errorf("expected <|endoftext|> to split into several tokens, got %d", count)
	}
}

func TestRegistry_DeterministicCounts(t *testing.T) {
	reg := NewRegistry(BackendOffline)
	tok, err := reg.Resolve("cl100k_base")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	text := "The quick brown fox jumps over the lazy dog."
	first, _ := tok.CountTokens(text)
	for i := 0; i < 5; i++ {
		again, _ := tok.CountTokens(text)
		if again != first {
			t.Fatalf("count changed between calls: %d vs %d", first, again)
		}
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := NewRegistry(BackendOffline)

	_, err := reg.Resolve("definitely-not-a-model")
	if err == nil {
		t.Fatal("expected error for unknown tokenizer")
	}

	var loadErr *domain.TokenizerLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected TokenizerLoadError, got %T: %v", err, err)
	}
	if loadErr.Model != "definitely-not-a-model" {
		t.Errorf("expected model name in error, got %q", loadErr.Model)
	}
	if !errors.Is(err, domain.ErrUnknownTokenizer) {
		t.Errorf("expected ErrUnknownTokenizer in chain, got %v", err)
	}
}

func TestRegistry_RegisterOverrides(t *testing.T) {
	reg := NewRegistry(BackendOffline)
	reg.Register("gpt2", func(name string) (port.Tokenizer, error) {
		return NewWhitespaceTokenizer(), nil
	})

	tok, err := reg.Resolve("gpt2")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if tok.Name() != "whitespace" {
		t.Errorf("expected override to win, got %s", tok.Name())
	}

	found := false
	for _, name := range reg.Names() {
		if name == "gpt2" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected gpt2 in Names(), got %v", reg.Names())
	}
}
