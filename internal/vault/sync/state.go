package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/apetrenko/mekvault/internal/models"
)

// peerStates is the engine-owned per-peer sync state map. Updates are atomic
// per peer so concurrent rounds with different peers cannot interleave
// writes to the same cursor.
type peerStates struct {
	mu     stdsync.RWMutex
	states map[string]*models.SyncState
}

func newPeerStates() peerStates {
	return peerStates{states: make(map[string]*models.SyncState)}
}

// get returns a copy of the peer's state, nil when the peer is unknown.
func (p *peerStates) get(peerID string) *models.SyncState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	state, ok := p.states[peerID]
	if !ok {
		return nil
	}
	return state.Clone()
}

// all returns copies of every known peer state.
func (p *peerStates) all() []*models.SyncState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	states := make([]*models.SyncState, 0, len(p.states))
	for _, state := range p.states {
		states = append(states, state.Clone())
	}
	return states
}

// ids returns the peer ids with known sync state.
func (p *peerStates) ids() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.states))
	for id := range p.states {
		ids = append(ids, id)
	}
	return ids
}

// update applies fn to the peer's state under the lock, creating the state
// lazily on first contact, and returns a copy of the result.
func (p *peerStates) update(peerID string, fn func(*models.SyncState)) *models.SyncState {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, ok := p.states[peerID]
	if !ok {
		state = &models.SyncState{PeerID: peerID, Status: models.SyncIdle}
		p.states[peerID] = state
	}

	fn(state)
	return state.Clone()
}

// delete removes the peer's state.
func (p *peerStates) delete(peerID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.states, peerID)
}

// set replaces the peer's state.
func (p *peerStates) set(state *models.SyncState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.states[state.PeerID] = state.Clone()
}

// GetSyncState returns the sync state for peerID, nil when the peer has
// never synced. Absence of state is a valid "never synced" condition, not
// an error.
func (e *Engine) GetSyncState(peerID string) *models.SyncState {
	return e.peers.get(peerID)
}

// GetAllSyncStates returns the sync state of every known peer.
func (e *Engine) GetAllSyncStates() []*models.SyncState {
	return e.peers.all()
}

// SetSyncStatus updates the peer's status, creating the state lazily on
// first contact.
func (e *Engine) SetSyncStatus(ctx context.Context, peerID string, status models.SyncStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid sync status %q", status)
	}

	state := e.peers.update(peerID, func(s *models.SyncState) {
		s.Status = status
	})

	e.persistState(ctx, state)
	return nil
}

// ResetSyncState tears down the peer relationship: the next sync starts
// from version 0 (full resend).
func (e *Engine) ResetSyncState(ctx context.Context, peerID string) error {
	e.peers.delete(peerID)

	if e.states != nil {
		if err := e.states.DeleteSyncState(ctx, peerID); err != nil {
			return fmt.Errorf("failed to delete persisted sync state: %w", err)
		}
	}

	e.logger.Info("Sync state reset", "peer_id", peerID)
	return nil
}

// Restore loads persisted sync states into the in-memory map. Call once
// after construction when a state store is configured.
func (e *Engine) Restore(ctx context.Context) error {
	if e.states == nil {
		return nil
	}

	states, err := e.states.GetAllSyncStates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync states: %w", err)
	}

	for _, state := range states {
		e.peers.set(state)
	}

	e.logger.Debug("Restored sync states", "count", len(states))
	return nil
}

// advanceCursor moves the peer's cursor forward after a reconciliation
// pass. The cursor never regresses: a retransmitted older batch must not
// rewind progress.
func (e *Engine) advanceCursor(ctx context.Context, peerID string, maxVersion int64) {
	state := e.peers.update(peerID, func(s *models.SyncState) {
		if maxVersion > s.LastVersion {
			s.LastVersion = maxVersion
		}
		s.LastSyncAt = time.Now()
	})

	e.persistState(ctx, state)
}

// persistState mirrors state into the optional state store. Persistence
// failures are logged, not propagated: the in-memory map stays the
// authoritative copy and a missing persisted state only means a full resend
// after restart.
func (e *Engine) persistState(ctx context.Context, state *models.SyncState) {
	if e.states == nil {
		return
	}

	if err := e.states.SaveSyncState(ctx, state); err != nil {
		e.logger.Warn("Failed to persist sync state",
			"peer_id", state.PeerID,
			"error", err)
	}
}
