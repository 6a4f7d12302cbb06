package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apetrenko/mekvault/internal/models"
)

// GetPendingConflicts returns all conflicts awaiting manual resolution,
// at most one per item.
func (e *Engine) GetPendingConflicts(ctx context.Context) ([]*models.Conflict, error) {
	return e.store.GetPendingConflicts(ctx)
}

// ResolveKeepLocal resolves a conflict in favor of the local version. The
// local item stays untouched; its entry remains unsynced, so the next round
// pushes the local version back to the diverged peer.
func (e *Engine) ResolveKeepLocal(ctx context.Context, conflictID string) error {
	if err := e.store.ResolveConflict(ctx, conflictID, models.ResolutionLocal); err != nil {
		return fmt.Errorf("failed to resolve conflict %s: %w", conflictID, err)
	}

	e.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"resolution", models.ResolutionLocal)

	return nil
}

// ResolveAcceptRemote resolves a conflict by adopting the remote version:
// the remote's hash and payload become the new latest entry for the item, a
// deferred apply of the originally conflicting change. The entry normally
// keeps the remote version; if local edits moved the item past it between
// detection and resolution, the entry is re-versioned above the local latest
// so the remote content actually wins.
func (e *Engine) ResolveAcceptRemote(ctx context.Context, conflictID string) error {
	conflict, err := e.store.GetConflict(ctx, conflictID)
	if err != nil {
		return fmt.Errorf("failed to get conflict %s: %w", conflictID, err)
	}

	version, err := e.store.NextVersion(ctx, conflict.ItemID)
	if err != nil {
		return fmt.Errorf("failed to get next version for item %s: %w", conflict.ItemID, err)
	}
	if conflict.RemoteVersion > version {
		version = conflict.RemoteVersion
	}

	if err := e.store.ResolveConflict(ctx, conflictID, models.ResolutionRemote); err != nil {
		return fmt.Errorf("failed to resolve conflict %s: %w", conflictID, err)
	}

	entry := &models.ChangeLogEntry{
		ID:          uuid.New().String(),
		ItemID:      conflict.ItemID,
		ChangeType:  models.ChangeUpdate,
		ContentType: conflict.ContentType,
		Version:     version,
		ContentHash: conflict.RemoteHash,
		Data:        conflict.RemoteData,
		Synced:      true,
		SourceID:    &conflict.RemotePeerID,
		Timestamp:   time.Now(),
	}

	if err := e.store.RecordChange(ctx, entry); err != nil {
		return fmt.Errorf("failed to adopt remote version for item %s: %w", conflict.ItemID, err)
	}

	e.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"resolution", models.ResolutionRemote,
		"item_id", conflict.ItemID)

	return nil
}

// ResolveFork resolves a conflict by keeping both variants: the local item
// stays byte-for-byte unchanged and the remote's payload is re-recorded as a
// brand-new item under a fresh id, so both survive under independent
// identities.
func (e *Engine) ResolveFork(ctx context.Context, conflictID string) (string, error) {
	conflict, err := e.store.GetConflict(ctx, conflictID)
	if err != nil {
		return "", fmt.Errorf("failed to get conflict %s: %w", conflictID, err)
	}

	if err := e.store.ResolveConflict(ctx, conflictID, models.ResolutionForked); err != nil {
		return "", fmt.Errorf("failed to resolve conflict %s: %w", conflictID, err)
	}

	forkedItemID := uuid.New().String()

	// Новый элемент: локальное создание, версия начинается заново,
	// запись пойдет к пирам как обычное локальное изменение
	entry := &models.ChangeLogEntry{
		ID:          uuid.New().String(),
		ItemID:      forkedItemID,
		ChangeType:  models.ChangeCreate,
		ContentType: conflict.ContentType,
		Version:     1,
		ContentHash: conflict.RemoteHash,
		Data:        conflict.RemoteData,
		Synced:      false,
		Timestamp:   time.Now(),
	}

	if err := e.store.RecordChange(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to create forked item: %w", err)
	}

	e.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"resolution", models.ResolutionForked,
		"item_id", conflict.ItemID,
		"forked_item_id", forkedItemID)

	return forkedItemID, nil
}
