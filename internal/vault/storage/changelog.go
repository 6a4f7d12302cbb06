package storage

import (
	"context"

	"github.com/apetrenko/mekvault/internal/models"
)

//go:generate moq -out changelog_mock.go . ChangeLogStore

// ChangeLogStore defines the interface for the append-only change log.
// Entries are immutable after creation except for the Synced flag; the store
// is the serialization point for all log mutations.
type ChangeLogStore interface {
	// RecordChange appends an entry to the log exactly as given.
	// The caller assigns ID and Version beforehand.
	RecordChange(ctx context.Context, entry *models.ChangeLogEntry) error

	// NextVersion returns the next per-item version for itemID
	// (1 for an item with no entries yet).
	NextVersion(ctx context.Context, itemID string) (int64, error)

	// GetChangesSince returns up to limit entries with version greater than
	// version, ordered by version then by append order.
	GetChangesSince(ctx context.Context, version int64, limit int) ([]*models.ChangeLogEntry, error)

	// GetUnsynced returns all entries with Synced == false.
	GetUnsynced(ctx context.Context) ([]*models.ChangeLogEntry, error)

	// GetCurrentVersion returns the highest version assigned so far,
	// 0 for an empty log.
	GetCurrentVersion(ctx context.Context) (int64, error)

	// GetEntry returns the entry with the given id.
	// Returns ErrEntryNotFound if it doesn't exist.
	GetEntry(ctx context.Context, id string) (*models.ChangeLogEntry, error)

	// GetLatestForItem returns the entry with the highest version for itemID.
	// Returns ErrEntryNotFound if the item has no entries.
	GetLatestForItem(ctx context.Context, itemID string) (*models.ChangeLogEntry, error)

	// MarkSynced flips the Synced flag on the named entries.
	MarkSynced(ctx context.Context, ids []string) error

	// MarkAckedByPeer records that peerID has acknowledged the named entries.
	// Unknown ids are ignored (no-op, not an error).
	MarkAckedByPeer(ctx context.Context, peerID string, ids []string) error

	// PeersAcked returns the peer ids that have acknowledged the entry.
	PeersAcked(ctx context.Context, id string) ([]string, error)

	// RecordConflict stores a conflict. While a pending conflict exists for
	// the same ItemID the call upserts it instead of creating a duplicate.
	RecordConflict(ctx context.Context, conflict *models.Conflict) error

	// GetPendingConflicts returns all conflicts with pending resolution.
	GetPendingConflicts(ctx context.Context) ([]*models.Conflict, error)

	// GetConflict returns a conflict by id.
	// Returns ErrConflictNotFound if it doesn't exist.
	GetConflict(ctx context.Context, id string) (*models.Conflict, error)

	// ResolveConflict transitions a pending conflict to a terminal
	// resolution. Returns ErrConflictResolved if it is already terminal.
	ResolveConflict(ctx context.Context, id string, resolution models.Resolution) error
}
