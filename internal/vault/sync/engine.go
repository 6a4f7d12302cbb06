// Package sync implements the change-log replication engine: it records
// local mutations, selects outbound batches per peer, reconciles incoming
// remote batches against local state and tracks per-peer sync progress.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apetrenko/mekvault/internal/models"
	"github.com/apetrenko/mekvault/internal/vault/hash"
	"github.com/apetrenko/mekvault/internal/vault/storage"
)

// DefaultPageSize bounds how many entries one sync round carries when the
// caller does not configure a page size. Keeps batches viable over
// constrained transports.
const DefaultPageSize = 100

// Options configures engine behavior.
type Options struct {
	// PageSize bounds outbound batches; 0 means DefaultPageSize.
	PageSize int

	// StrictHashes treats a missing content hash on either side of a
	// divergent version comparison as a conflict instead of "equal".
	// Off preserves the legacy nil == nil behavior for vaults created
	// before hashing existed.
	StrictHashes bool

	// AckCompletesSync flips an entry's global Synced flag once every peer
	// with a known sync state has acknowledged it.
	AckCompletesSync bool
}

// Engine is the change-log replication engine. It owns the in-memory
// per-peer sync state map; the change log store is the serialization point
// for all log mutations.
type Engine struct {
	store  storage.ChangeLogStore
	states storage.SyncStateStore // optional, nil disables persistence
	logger *slog.Logger
	hashFn hash.Fn
	opts   Options

	peers peerStates
}

// New creates a new sync engine. states may be nil, in which case sync
// state lives only in memory (a missing state means "never synced").
func New(store storage.ChangeLogStore, states storage.SyncStateStore, opts Options, logger *slog.Logger) *Engine {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	return &Engine{
		store:  store,
		states: states,
		logger: logger,
		opts:   opts,
		peers:  newPeerStates(),
	}
}

// SetContentHashFn injects the content hash provider. Without a provider
// entries are recorded with a nil hash, which degrades conflict detection
// (see Options.StrictHashes).
func (e *Engine) SetContentHashFn(fn hash.Fn) {
	e.hashFn = fn
}

// RecordChange appends a locally-authored change to the log and returns the
// stored entry. The entry gets the next per-item version and starts with
// Synced == false: it is fresh local work no peer has acknowledged yet.
func (e *Engine) RecordChange(ctx context.Context, changeType models.ChangeType, contentType models.ContentType, itemID string, data []byte) (*models.ChangeLogEntry, error) {
	if !changeType.Valid() {
		return nil, fmt.Errorf("invalid change type %q", changeType)
	}
	if !contentType.Valid() {
		return nil, fmt.Errorf("invalid content type %q", contentType)
	}
	if itemID == "" {
		return nil, fmt.Errorf("item id is required")
	}

	contentHash, err := e.computeHash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to hash content: %w", err)
	}

	version, err := e.store.NextVersion(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get next version: %w", err)
	}

	entry := &models.ChangeLogEntry{
		ID:          uuid.New().String(),
		ItemID:      itemID,
		ChangeType:  changeType,
		ContentType: contentType,
		Version:     version,
		ContentHash: contentHash,
		Data:        data,
		Synced:      false,
		Timestamp:   time.Now(),
	}

	if err := e.store.RecordChange(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record change: %w", err)
	}

	e.logger.Debug("Recorded local change",
		"item_id", itemID,
		"change_type", changeType,
		"version", version)

	return entry, nil
}

// GetCurrentVersion returns the highest version assigned in the local log.
func (e *Engine) GetCurrentVersion(ctx context.Context) (int64, error) {
	return e.store.GetCurrentVersion(ctx)
}

// GetUnsyncedChanges returns all entries that still represent
// unacknowledged local work, regardless of peer.
func (e *Engine) GetUnsyncedChanges(ctx context.Context) ([]*models.ChangeLogEntry, error) {
	return e.store.GetUnsynced(ctx)
}

// GetChangesForPeer returns the next batch of changes the peer has not yet
// received, bounded by the configured page size. Selecting a batch does not
// advance the peer's cursor; that happens when the peer's own batch is
// reconciled or when delivery is acknowledged via MarkSyncedToPeer.
func (e *Engine) GetChangesForPeer(ctx context.Context, peerID string) ([]*models.ChangeLogEntry, error) {
	var since int64
	if state := e.peers.get(peerID); state != nil {
		since = state.LastVersion
	}

	changes, err := e.store.GetChangesSince(ctx, since, e.opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get changes since %d: %w", since, err)
	}

	e.logger.Debug("Selected outbound batch",
		"peer_id", peerID,
		"since", since,
		"count", len(changes))

	return changes, nil
}

// MarkSyncedToPeer records that the peer acknowledged delivery of the named
// entries and advances the peer's cursor to the highest acked version, so
// the next outbound batch starts past them. The global Synced flag is only
// flipped when AckCompletesSync is on and every tracked peer has
// acknowledged an entry.
func (e *Engine) MarkSyncedToPeer(ctx context.Context, peerID string, changeIDs []string) error {
	if len(changeIDs) == 0 {
		return nil
	}

	if err := e.store.MarkAckedByPeer(ctx, peerID, changeIDs); err != nil {
		return fmt.Errorf("failed to mark entries acked by peer %s: %w", peerID, err)
	}

	// Двигаем курсор: подтвержденные записи пиру пересылать не нужно
	var maxVersion int64
	for _, id := range changeIDs {
		entry, err := e.store.GetEntry(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrEntryNotFound) {
				continue
			}
			return fmt.Errorf("failed to get acked entry %s: %w", id, err)
		}

		if entry.Version > maxVersion {
			maxVersion = entry.Version
		}
	}

	if maxVersion > 0 {
		e.advanceCursor(ctx, peerID, maxVersion)
	}

	if !e.opts.AckCompletesSync {
		return nil
	}

	known := e.peers.ids()
	if len(known) == 0 {
		return nil
	}

	var completed []string
	for _, id := range changeIDs {
		acked, err := e.store.PeersAcked(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get acks for entry %s: %w", id, err)
		}

		if containsAll(acked, known) {
			completed = append(completed, id)
		}
	}

	if len(completed) == 0 {
		return nil
	}

	if err := e.store.MarkSynced(ctx, completed); err != nil {
		return fmt.Errorf("failed to mark entries synced: %w", err)
	}

	e.logger.Info("Entries acknowledged by all peers",
		"count", len(completed))

	return nil
}

// computeHash вычисляет дайджест содержимого через настроенный провайдер.
// Возвращает nil если провайдер не настроен.
func (e *Engine) computeHash(data []byte) (*string, error) {
	if e.hashFn == nil {
		return nil, nil
	}

	h, err := e.hashFn(data)
	if err != nil {
		return nil, err
	}

	return &h, nil
}

// containsAll reports whether got contains every element of want.
func containsAll(got, want []string) bool {
	set := make(map[string]struct{}, len(got))
	for _, s := range got {
		set[s] = struct{}{}
	}

	for _, s := range want {
		if _, ok := set[s]; !ok {
			return false
		}
	}

	return true
}
