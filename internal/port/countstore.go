package port

import "robotreadme/internal/domain"

// CountStore persists token counts keyed by content hash and tokenizer name.
type CountStore interface {
	GetCount(key string) (domain.CountEntry, bool, error)

	PutCount(key string, entry domain.CountEntry) error

	Close() error
}
