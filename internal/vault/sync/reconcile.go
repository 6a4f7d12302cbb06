package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apetrenko/mekvault/internal/models"
	"github.com/apetrenko/mekvault/internal/vault/storage"
)

// decision is the outcome of comparing a local entry against an incoming
// remote change.
type decision int

const (
	// decisionApply means the remote change becomes the new latest entry.
	decisionApply decision = iota

	// decisionSkip means the remote change is stale or a duplicate and
	// no store mutation is needed. Re-delivering the same batch is
	// therefore always safe.
	decisionSkip

	// decisionConflict means both sides hold unacknowledged divergent
	// content; the change is queued for manual resolution and the local
	// item stays untouched.
	decisionConflict
)

// reconcile decides what to do with an incoming remote change, comparing it
// against the local latest entry for the same item. Pure decision function
// with no I/O; local is nil when the item has no local entries.
//
// Scalar per-item versions cannot encode true causal history across three or
// more peers; the hash comparison below catches same-content divergence but
// topologies where neither side dominates rely on manual resolution.
func reconcile(local, remote *models.ChangeLogEntry, strict bool) decision {
	// Нет локальной записи - принимаем удалённую
	if local == nil {
		return decisionApply
	}

	if local.Synced {
		// Нет неподтверждённой локальной работы: ничего не потеряем
		if remote.NewerThan(local) {
			return decisionApply
		}
		return decisionSkip
	}

	// Есть неподтверждённая локальная работа на этом элементе
	if !remote.NewerThan(local) {
		return decisionSkip
	}

	if hashesEqual(local.ContentHash, remote.ContentHash, strict) {
		// Обе стороны независимо пришли к одинаковому содержимому
		return decisionApply
	}

	return decisionConflict
}

// hashesEqual сравнивает дайджесты с учётом режима StrictHashes: в строгом
// режиме отсутствующий хеш при расходящихся версиях означает конфликт.
func hashesEqual(local, remote *string, strict bool) bool {
	if local == nil || remote == nil {
		if strict {
			return false
		}
		return local == nil && remote == nil
	}
	return *local == *remote
}

// ApplyResult summarizes one reconciliation pass over a remote batch.
type ApplyResult struct {
	Applied   []string           // item ids adopted from the batch
	Skipped   []string           // item ids skipped as stale or duplicate
	Conflicts []*models.Conflict // conflicts raised for manual resolution
}

// ApplyRemoteChanges reconciles a batch received from peerID against local
// state. Each entry is classified independently as apply, skip or conflict;
// applied entries are persisted immediately so a same-item correction chain
// within one batch reconciles against its freshly-applied predecessor.
//
// After the batch the peer's cursor advances to the maximum version observed
// across all entries, conflicted ones included: the peer must not be asked
// to resend a conflicting change forever — resolving the conflict is what
// reconciles it, not re-delivery.
func (e *Engine) ApplyRemoteChanges(ctx context.Context, peerID string, remoteChanges []*models.ChangeLogEntry) (*ApplyResult, error) {
	e.logger.Info("Applying remote changes",
		"peer_id", peerID,
		"count", len(remoteChanges))

	result := &ApplyResult{}
	var maxVersion int64

	for _, remote := range remoteChanges {
		if remote.Version > maxVersion {
			maxVersion = remote.Version
		}

		// Запрашиваем локальную запись заново для каждого изменения:
		// элемент мог быть обновлён предыдущим изменением этого же батча
		local, err := e.store.GetLatestForItem(ctx, remote.ItemID)
		if err != nil && !errors.Is(err, storage.ErrEntryNotFound) {
			return nil, fmt.Errorf("failed to get latest entry for item %s: %w", remote.ItemID, err)
		}

		switch reconcile(local, remote, e.opts.StrictHashes) {
		case decisionApply:
			if err := e.adoptRemote(ctx, peerID, remote); err != nil {
				return nil, err
			}
			result.Applied = append(result.Applied, remote.ItemID)

			e.logger.Debug("Applied remote change",
				"item_id", remote.ItemID,
				"version", remote.Version)

		case decisionSkip:
			result.Skipped = append(result.Skipped, remote.ItemID)

			e.logger.Debug("Skipped remote change",
				"item_id", remote.ItemID,
				"version", remote.Version)

		case decisionConflict:
			conflict, err := e.raiseConflict(ctx, peerID, local, remote)
			if err != nil {
				return nil, err
			}
			result.Conflicts = append(result.Conflicts, conflict)

			e.logger.Warn("Conflict detected",
				"item_id", remote.ItemID,
				"local_version", local.Version,
				"remote_version", remote.Version,
				"peer_id", peerID)
		}
	}

	// Двигаем курсор пира атомарно, даже при наличии конфликтов
	e.advanceCursor(ctx, peerID, maxVersion)

	e.logger.Info("Reconciliation completed",
		"peer_id", peerID,
		"applied", len(result.Applied),
		"skipped", len(result.Skipped),
		"conflicts", len(result.Conflicts))

	return result, nil
}

// adoptRemote persists a remote change as the new latest entry for its item.
// The adopted entry keeps the remote version, hash and payload; it is marked
// Synced because it carries no unacknowledged local work.
func (e *Engine) adoptRemote(ctx context.Context, peerID string, remote *models.ChangeLogEntry) error {
	entry := remote.Clone()
	entry.Synced = true
	entry.SourceID = &peerID
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := e.store.RecordChange(ctx, entry); err != nil {
		return fmt.Errorf("failed to adopt remote change for item %s: %w", remote.ItemID, err)
	}

	return nil
}

// raiseConflict records a pending conflict for manual resolution. Repeated
// detection upserts the existing pending conflict instead of duplicating it.
func (e *Engine) raiseConflict(ctx context.Context, peerID string, local, remote *models.ChangeLogEntry) (*models.Conflict, error) {
	conflict := &models.Conflict{
		ID:            uuid.New().String(),
		ItemID:        remote.ItemID,
		ItemName:      itemName(remote.Data),
		ContentType:   remote.ContentType,
		LocalVersion:  local.Version,
		LocalHash:     local.ContentHash,
		RemoteVersion: remote.Version,
		RemoteHash:    remote.ContentHash,
		RemotePeerID:  peerID,
		RemoteData:    remote.Data,
		Resolution:    models.ResolutionPending,
		DetectedAt:    time.Now(),
	}

	if err := e.store.RecordConflict(ctx, conflict); err != nil {
		return nil, fmt.Errorf("failed to record conflict for item %s: %w", remote.ItemID, err)
	}

	return conflict, nil
}

// itemName достает человекочитаемое имя из полезной нагрузки (поле "name").
// Best-effort: пустая строка если нагрузки нет или она не JSON объект.
func itemName(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}

	return payload.Name
}
