package domain

import "time"

// TokenCount is the number of tokens a tokenizer produced for one input.
type TokenCount int

// ComparisonState classifies file2 relative to file1.
type ComparisonState int

const (
	StateEqual ComparisonState = iota
	StateLarger
	StateSmaller
	// StateUndefined means file1 has zero tokens and no percentage exists.
	StateUndefined
)

func (s ComparisonState) String() string {
	switch s {
	case StateEqual:
		return "equal"
	case StateLarger:
		return "larger"
	case StateSmaller:
		return "smaller"
	case StateUndefined:
		return "undefined"
	}
	return "unknown"
}

// ComparisonResult is the outcome of comparing two files, anchored on file1.
type ComparisonResult struct {
	Path1   string          `json:"file1"`
	Path2   string          `json:"file2"`
	Model   string          `json:"model"`
	Tokens1 TokenCount      `json:"tokens1"`
	Tokens2 TokenCount      `json:"tokens2"`
	Delta   float64         `json:"delta"` // signed percent; zero when State is StateUndefined
	State   ComparisonState `json:"-"`
}

// FileCount is one row of a batch count.
type FileCount struct {
	Path   string     `json:"path"`
	Tokens TokenCount `json:"tokens"`
	Err    error      `json:"-"`
}

// CountEntry is a cached token count.
type CountEntry struct {
	Tokens    TokenCount `json:"tokens"`
	CreatedAt time.Time  `json:"created_at"`
}

// Bill is a legislative record. Every field may be absent in API responses;
// absent strings are empty and absent numbers are zero.
type Bill struct {
	Congress     int
	Type         string
	Number       string
	Title        string
	IntroducedOn string
	LatestAction *LatestAction
	Subjects     []string
}

// LatestAction is the most recent action taken on a bill.
type LatestAction struct {
	ActionDate string
	Text       string
}

// BillSummary is one CRS summary version of a bill.
type BillSummary struct {
	UpdateDate string
	Text       string
}

// SummaryHit is a search result from the summaries endpoint.
type SummaryHit struct {
	Congress   int
	BillType   string
	BillNumber string
	Title      string
	UpdateDate string
	Text       string
}

// Law is an enacted bill.
type Law struct {
	Congress  int
	Type      string
	Number    string
	Title     string
	EnactedOn string
	Subjects  []string
}
