package models

import "time"

// ChangeType описывает вид изменения: создание, обновление или удаление.
type ChangeType string

// Change type константы
const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// Valid reports whether the change type is one of the known values.
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeCreate, ChangeUpdate, ChangeDelete:
		return true
	}
	return false
}

// ContentType определяет тип элемента хранилища: "unit", "pilot", "force".
type ContentType string

// Content type константы
const (
	ContentUnit  ContentType = "unit"
	ContentPilot ContentType = "pilot"
	ContentForce ContentType = "force"
)

// Valid reports whether the content type is one of the known values.
// Remote entries may carry tags from newer peers; those bypass this check
// and round-trip opaquely.
func (t ContentType) Valid() bool {
	switch t {
	case ContentUnit, ContentPilot, ContentForce:
		return true
	}
	return false
}

// ChangeLogEntry представляет одну неизменяемую запись журнала изменений:
// "элемент X был создан/обновлён/удалён". Записи никогда не мутируются после
// создания, кроме флага Synced.
type ChangeLogEntry struct {
	Timestamp   time.Time   `json:"timestamp"`    // Timestamp время создания записи (для информации, не для упорядочивания)
	ID          string      `json:"id"`           // ID уникальный идентификатор записи (UUID)
	ItemID      string      `json:"item_id"`      // ItemID идентификатор логического элемента
	ChangeType  ChangeType  `json:"change_type"`  // ChangeType вид изменения
	ContentType ContentType `json:"content_type"` // ContentType тип элемента
	ContentHash *string     `json:"content_hash"` // ContentHash дайджест содержимого, nil если hash provider не настроен
	SourceID    *string     `json:"source_id"`    // SourceID идентификатор пира-источника, nil для локальных изменений
	Data        []byte      `json:"data"`         // Data полезная нагрузка изменения (может отсутствовать)
	Version     int64       `json:"version"`      // Version монотонно растущие логические часы для элемента
	Synced      bool        `json:"synced"`       // Synced true когда запись покинула локальный "pending" набор
}

// NewerThan reports whether e is strictly newer than other for the same item,
// comparing per-item versions. Scalar versions cannot encode true causal
// history across three or more peers; divergence at equal hashes is caught by
// the reconciliation hash comparison instead.
func (e *ChangeLogEntry) NewerThan(other *ChangeLogEntry) bool {
	return e.Version > other.Version
}

// Local reports whether the entry was authored on this node.
func (e *ChangeLogEntry) Local() bool {
	return e.SourceID == nil
}

// Clone создает глубокую копию записи журнала.
func (e *ChangeLogEntry) Clone() *ChangeLogEntry {
	clone := *e
	if e.ContentHash != nil {
		h := *e.ContentHash
		clone.ContentHash = &h
	}
	if e.SourceID != nil {
		s := *e.SourceID
		clone.SourceID = &s
	}
	if e.Data != nil {
		clone.Data = make([]byte, len(e.Data))
		copy(clone.Data, e.Data)
	}
	return &clone
}
