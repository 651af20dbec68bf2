package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaVersion returns the stored schema version, 0 for a new database.
func (s *BoltStore) SchemaVersion() (int, error) {
	var version int
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &version); err != nil {
			version = 0
		}
		return nil
	})
	return version, err
}

func (s *BoltStore) setSchemaVersion(version int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(version)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}

// MigrationResult describes the result of a migration check.
type MigrationResult struct {
	Cleared    bool
	OldVersion int
	NewVersion int
}

// Migrate brings the database to CurrentSchemaVersion. Counts written under
// another version are dropped since they are cheap to recompute.
func (s *BoltStore) Migrate() (*MigrationResult, error) {
	old, err := s.SchemaVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema version: %w", err)
	}

	result := &MigrationResult{OldVersion: old, NewVersion: CurrentSchemaVersion}
	if old == CurrentSchemaVersion {
		return result, nil
	}

	if old != 0 {
		if err := s.Clear(); err != nil {
			return nil, fmt.Errorf("failed to clear counts: %w", err)
		}
		result.Cleared = true
	}

	if err := s.setSchemaVersion(CurrentSchemaVersion); err != nil {
		return nil, fmt.Errorf("failed to set schema version: %w", err)
	}
	return result, nil
}
