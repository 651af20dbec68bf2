package port

// Tokenizer counts the tokens a model would see for a text.
type Tokenizer interface {
	CountTokens(text string) (int, error)

	// Name returns the registry name the tokenizer was resolved from.
	Name() string
}

// TokenizerResolver loads a tokenizer by name.
type TokenizerResolver interface {
	Resolve(name string) (Tokenizer, error)
}
