package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/apetrenko/mekvault/internal/vault/storage"
)

const (
	keyNodeID = "node_id"
)

// NodeID returns this vault's node identifier, generating and persisting a
// new UUID on first call. The id is stable for the lifetime of the database.
func (s *Storage) NodeID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var nodeID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		existing := bucket.Get([]byte(keyNodeID))
		if existing != nil {
			nodeID = string(existing)
			return nil
		}

		// Генерируем и сохраняем новый идентификатор узла
		nodeID = uuid.New().String()
		if err := bucket.Put([]byte(keyNodeID), []byte(nodeID)); err != nil {
			return fmt.Errorf("failed to save node id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get node id: %w", err)
	}

	return nodeID, nil
}
