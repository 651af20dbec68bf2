package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"robotreadme/internal/domain"
)

var (
	bucketCounts = []byte("counts")
	bucketMeta   = []byte("meta")
)

// BoltStore persists token counts in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketCounts, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type countRecord struct {
	Tokens    int   `json:"tokens"`
	CreatedAt int64 `json:"created_at"`
}

func (s *BoltStore) GetCount(key string) (domain.CountEntry, bool, error) {
	var (
		entry domain.CountEntry
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCounts).Get([]byte(key))
		if data == nil {
			return nil
		}
		var rec countRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("corrupt count record %s: %w", key, err)
		}
		entry = domain.CountEntry{
			Tokens:    domain.TokenCount(rec.Tokens),
			CreatedAt: time.Unix(rec.CreatedAt, 0),
		}
		found = true
		return nil
	})
	return entry, found, err
}

func (s *BoltStore) PutCount(key string, entry domain.CountEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(countRecord{
			Tokens:    int(entry.Tokens),
			CreatedAt: entry.CreatedAt.Unix(),
		})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketCounts).Put([]byte(key), data)
	})
}

// Len returns the number of stored counts.
func (s *BoltStore) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketCounts).Stats().KeyN
		return nil
	})
	return n, err
}

// Clear removes all stored counts.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCounts); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketCounts)
		return err
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
