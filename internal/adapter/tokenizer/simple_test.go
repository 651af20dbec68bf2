package tokenizer

import (
	"testing"
)

func TestWhitespaceTokenizer_CountTokens(t *testing.T) {
	tok := NewWhitespaceTokenizer()

	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"   \n\t", 0},
		{"hello world", 2},
		{"hello world foo", 3},
		{"a b c d", 4},
		{"  leading and trailing  ", 3},
		{"hello-world, again", 2},
	}

	for _, tt := range tests {
		count, err := tok.CountTokens(tt.input)
		if err != nil {
			t.Fatalf("CountTokens(%q) error: %v", tt.input, err)
		}
		if count != tt.expected {
			t.Errorf("CountTokens(%q) = %d, want %d", tt.input, count, tt.expected)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"hello world", 2},
		{"hello_world", 1},
		{"hello-world", 2},
		{"func(x, y)", 3},
		{"CamelCase", 1},
		{"snake_case_name", 1},
		{"123numbers456", 1},
		{"", 0},
	}

	for _, tt := range tests {
		words := splitWords(tt.input)
		if len(words) != tt.expected {
			t.Errorf("splitWords(%q) = %d words, want %d: %v", tt.input, len(words), tt.expected, words)
		}
	}
}

func TestWordTokenizer_CountTokens(t *testing.T) {
	tok := NewWordTokenizer()

	count, _ := tok.CountTokens("func(x, y) { return x+y }")
	if count != 6 {
		t.Errorf("expected 6 words, got %d", count)
	}
}

func TestEstimatingTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		text     string
		expected int
	}{
		{"empty", 4, "", 0},
		{"exact multiple", 4, "abcdefgh", 2},
		{"rounds half up", 4, "abcdef", 2},
		{"rounds down", 4, "abcde", 1},
		{"counts runes not bytes", 4, "日本語の", 1},
		{"zero ratio uses default", 0, "abcdefgh", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewEstimatingTokenizer(tt.ratio)
			count, _ := tok.CountTokens(tt.text)
			if count != tt.expected {
				t.Errorf("CountTokens(%q) = %d, want %d", tt.text, count, tt.expected)
			}
		})
	}
}
