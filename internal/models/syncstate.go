package models

import "time"

// SyncStatus описывает текущее состояние синхронизации с пиром.
type SyncStatus string

// Sync status константы
const (
	SyncIdle    SyncStatus = "idle"
	SyncSyncing SyncStatus = "syncing"
	SyncError   SyncStatus = "error"
)

// Valid reports whether the status is one of the known values.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncIdle, SyncSyncing, SyncError:
		return true
	}
	return false
}

// SyncState хранит прогресс синхронизации с одним пиром. Отсутствие
// состояния эквивалентно "никогда не синхронизировались" (курсор 0).
type SyncState struct {
	LastSyncAt  time.Time  `json:"last_sync_at"` // LastSyncAt время последней сверки
	PeerID      string     `json:"peer_id"`      // PeerID идентификатор пира
	Status      SyncStatus `json:"status"`       // Status текущий статус
	LastVersion int64      `json:"last_version"` // LastVersion максимальная версия, которую пир получил/прислал
}

// Clone создает копию состояния синхронизации.
func (s *SyncState) Clone() *SyncState {
	clone := *s
	return &clone
}
