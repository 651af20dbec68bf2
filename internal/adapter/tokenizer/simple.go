package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultCharsPerToken is the rune-to-token ratio of the estimating tokenizer.
const DefaultCharsPerToken = 4.0

// WhitespaceTokenizer splits text on Unicode whitespace.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (t *WhitespaceTokenizer) CountTokens(text string) (int, error) {
	return len(strings.Fields(text)), nil
}

func (t *WhitespaceTokenizer) Name() string {
	return "whitespace"
}

// WordTokenizer splits text into runs of letters, digits and underscores.
// Punctuation separates words and is dropped.
type WordTokenizer struct{}

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

func (t *WordTokenizer) CountTokens(text string) (int, error) {
	return len(splitWords(text)), nil
}

func (t *WordTokenizer) Name() string {
	return "words"
}

// EstimatingTokenizer approximates BPE counts from the rune count.
type EstimatingTokenizer struct {
	charsPerToken float64
}

// NewEstimatingTokenizer creates an estimator. A ratio <= 0 uses DefaultCharsPerToken.
func NewEstimatingTokenizer(charsPerToken float64) *EstimatingTokenizer {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingTokenizer{charsPerToken: charsPerToken}
}

func (t *EstimatingTokenizer) CountTokens(text string) (int, error) {
	runes := utf8.RuneCountInString(text)
	// Round to nearest integer
	return int(float64(runes)/t.charsPerToken + 0.5), nil
}

func (t *EstimatingTokenizer) Name() string {
	return "estimate"
}

// splitWords splits text into words using unicode word boundaries.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
