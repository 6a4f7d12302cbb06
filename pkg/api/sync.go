// Package api defines the transport-facing batch shapes exchanged between
// peers. Serialization of a batch is the transport layer's concern; the
// engine only sees ordered sequences of change entries.
package api

import (
	"time"

	"github.com/apetrenko/mekvault/internal/models"
)

// ChangeEntry представляет одну запись журнала изменений в батче.
// Флаг synced не передается: это локальная бухгалтерия каждого узла.
type ChangeEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	ChangeType  string    `json:"change_type"`
	ContentType string    `json:"content_type"`
	ContentHash *string   `json:"content_hash,omitempty"`
	SourceID    *string   `json:"source_id,omitempty"`
	Data        []byte    `json:"data,omitempty"`
	Version     int64     `json:"version"`
}

// ChangeBatch представляет батч изменений для передачи пиру.
type ChangeBatch struct {
	PeerID  string        `json:"peer_id"` // идентификатор узла-отправителя
	Since   int64         `json:"since"`   // курсор, с которого выбран батч
	Entries []ChangeEntry `json:"entries"`
}

// FromModel converts a change log entry to its wire shape.
func FromModel(entry *models.ChangeLogEntry) ChangeEntry {
	return ChangeEntry{
		Timestamp:   entry.Timestamp,
		ID:          entry.ID,
		ItemID:      entry.ItemID,
		ChangeType:  string(entry.ChangeType),
		ContentType: string(entry.ContentType),
		ContentHash: entry.ContentHash,
		SourceID:    entry.SourceID,
		Data:        entry.Data,
		Version:     entry.Version,
	}
}

// ToModel converts a wire entry back to the engine's model. Synced and
// SourceID are assigned by the receiving engine during reconciliation.
func ToModel(entry ChangeEntry) *models.ChangeLogEntry {
	return &models.ChangeLogEntry{
		Timestamp:   entry.Timestamp,
		ID:          entry.ID,
		ItemID:      entry.ItemID,
		ChangeType:  models.ChangeType(entry.ChangeType),
		ContentType: models.ContentType(entry.ContentType),
		ContentHash: entry.ContentHash,
		Data:        entry.Data,
		Version:     entry.Version,
	}
}

// NewBatch builds an outbound batch from change log entries.
func NewBatch(peerID string, since int64, entries []*models.ChangeLogEntry) ChangeBatch {
	batch := ChangeBatch{
		PeerID:  peerID,
		Since:   since,
		Entries: make([]ChangeEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		batch.Entries = append(batch.Entries, FromModel(entry))
	}

	return batch
}

// Models converts every entry in the batch back to engine models,
// preserving order.
func (b ChangeBatch) Models() []*models.ChangeLogEntry {
	result := make([]*models.ChangeLogEntry, 0, len(b.Entries))
	for _, entry := range b.Entries {
		result = append(result, ToModel(entry))
	}
	return result
}
