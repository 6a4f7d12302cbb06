package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/apetrenko/mekvault/internal/models"
	"github.com/apetrenko/mekvault/internal/vault/storage"
)

// SaveSyncState stores or replaces the state for state.PeerID
func (s *Storage) SaveSyncState(ctx context.Context, state *models.SyncState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем state в JSON
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal sync state: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("sync state bucket not found")
		}

		// Сохраняем по ключу PeerID
		if err := bucket.Put([]byte(state.PeerID), data); err != nil {
			return fmt.Errorf("failed to save sync state: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetSyncState retrieves the state for peerID
// Returns storage.ErrStateNotFound if the peer has never synced
func (s *Storage) GetSyncState(ctx context.Context, peerID string) (*models.SyncState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var state *models.SyncState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return storage.ErrStateNotFound
		}

		data := bucket.Get([]byte(peerID))
		if data == nil {
			return storage.ErrStateNotFound
		}

		// Десериализуем
		state = &models.SyncState{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal sync state: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return state, nil
}

// GetAllSyncStates returns states for every known peer
func (s *Storage) GetAllSyncStates(ctx context.Context) ([]*models.SyncState, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var states []*models.SyncState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			// Нет bucket - возвращаем пустой список
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var state models.SyncState
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("failed to unmarshal sync state: %w", err)
			}
			states = append(states, &state)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all sync states: %w", err)
	}

	return states, nil
}

// DeleteSyncState removes the state for peerID
// Deleting an unknown peer is a no-op
func (s *Storage) DeleteSyncState(ctx context.Context, peerID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return nil
		}

		return bucket.Delete([]byte(peerID))
	})

	if err != nil {
		return fmt.Errorf("failed to delete sync state: %w", err)
	}

	return nil
}
