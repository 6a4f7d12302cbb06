package models

import "time"

// Resolution описывает состояние разрешения конфликта.
// Переход из pending в любое другое состояние терминальный.
type Resolution string

// Resolution константы
const (
	ResolutionPending Resolution = "pending"
	ResolutionLocal   Resolution = "local"
	ResolutionRemote  Resolution = "remote"
	ResolutionForked  Resolution = "forked"
)

// Valid reports whether the resolution is one of the known values.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionPending, ResolutionLocal, ResolutionRemote, ResolutionForked:
		return true
	}
	return false
}

// Terminal reports whether the resolution is a final state.
func (r Resolution) Terminal() bool {
	return r.Valid() && r != ResolutionPending
}

// Conflict представляет обнаруженное расхождение между локальной и удалённой
// версией одного элемента. Создается только алгоритмом сверки; разрешается
// ровно один раз. Для одного ItemID одновременно существует не более одного
// pending конфликта.
type Conflict struct {
	DetectedAt    time.Time   `json:"detected_at"`    // DetectedAt время обнаружения конфликта
	ID            string      `json:"id"`             // ID уникальный идентификатор конфликта (UUID)
	ItemID        string      `json:"item_id"`        // ItemID конфликтующий элемент
	ItemName      string      `json:"item_name"`      // ItemName человекочитаемое имя элемента (для UI)
	ContentType   ContentType `json:"content_type"`   // ContentType тип элемента
	LocalHash     *string     `json:"local_hash"`     // LocalHash дайджест локальной версии
	RemoteHash    *string     `json:"remote_hash"`    // RemoteHash дайджест удалённой версии
	RemotePeerID  string      `json:"remote_peer_id"` // RemotePeerID пир, приславший конфликтующее изменение
	RemoteData    []byte      `json:"remote_data"`    // RemoteData полезная нагрузка удалённой версии (для resolve)
	Resolution    Resolution  `json:"resolution"`     // Resolution текущее состояние разрешения
	LocalVersion  int64       `json:"local_version"`  // LocalVersion версия локальной записи на момент обнаружения
	RemoteVersion int64       `json:"remote_version"` // RemoteVersion версия удалённой записи
}

// Pending reports whether the conflict still awaits manual resolution.
func (c *Conflict) Pending() bool {
	return c.Resolution == ResolutionPending
}

// Clone создает глубокую копию конфликта.
func (c *Conflict) Clone() *Conflict {
	clone := *c
	if c.LocalHash != nil {
		h := *c.LocalHash
		clone.LocalHash = &h
	}
	if c.RemoteHash != nil {
		h := *c.RemoteHash
		clone.RemoteHash = &h
	}
	if c.RemoteData != nil {
		clone.RemoteData = make([]byte, len(c.RemoteData))
		copy(clone.RemoteData, c.RemoteData)
	}
	return &clone
}
