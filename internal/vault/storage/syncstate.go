package storage

import (
	"context"

	"github.com/apetrenko/mekvault/internal/models"
)

//go:generate moq -out syncstate_mock.go . SyncStateStore

// SyncStateStore persists per-peer sync cursors across restarts.
// The engine owns the authoritative in-memory state map; this store is an
// optional mirror — a missing state is equivalent to "never synced".
type SyncStateStore interface {
	// SaveSyncState stores or replaces the state for state.PeerID.
	SaveSyncState(ctx context.Context, state *models.SyncState) error

	// GetSyncState retrieves the state for peerID.
	// Returns ErrStateNotFound if the peer has never synced.
	GetSyncState(ctx context.Context, peerID string) (*models.SyncState, error)

	// GetAllSyncStates returns states for every known peer.
	GetAllSyncStates(ctx context.Context) ([]*models.SyncState, error)

	// DeleteSyncState removes the state for peerID.
	// Deleting an unknown peer is a no-op.
	DeleteSyncState(ctx context.Context, peerID string) error
}
