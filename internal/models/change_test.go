package models

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChangeType_Valid(t *testing.T) {
	assert.True(t, ChangeCreate.Valid())
	assert.True(t, ChangeUpdate.Valid())
	assert.True(t, ChangeDelete.Valid())
	assert.False(t, ChangeType("").Valid())
	assert.False(t, ChangeType("rename").Valid())
}

func TestContentType_Valid(t *testing.T) {
	assert.True(t, ContentUnit.Valid())
	assert.True(t, ContentPilot.Valid())
	assert.True(t, ContentForce.Valid())
	assert.False(t, ContentType("").Valid())
	assert.False(t, ContentType("scenario").Valid())
}

func TestChangeLogEntry_NewerThan(t *testing.T) {
	tests := []struct {
		self     *ChangeLogEntry
		other    *ChangeLogEntry
		name     string
		expected bool
	}{
		{
			name:     "self version greater",
			self:     &ChangeLogEntry{Version: 6},
			other:    &ChangeLogEntry{Version: 5},
			expected: true,
		},
		{
			name:     "self version smaller",
			self:     &ChangeLogEntry{Version: 4},
			other:    &ChangeLogEntry{Version: 5},
			expected: false,
		},
		{
			name:     "versions equal",
			self:     &ChangeLogEntry{Version: 5},
			other:    &ChangeLogEntry{Version: 5},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.self.NewerThan(tt.other))
		})
	}
}

func TestChangeLogEntry_Local(t *testing.T) {
	local := &ChangeLogEntry{}
	assert.True(t, local.Local())

	peer := "peer-1"
	remote := &ChangeLogEntry{SourceID: &peer}
	assert.False(t, remote.Local())
}

func TestChangeLogEntry_Clone(t *testing.T) {
	hash := "abc123"
	source := "peer-1"

	original := &ChangeLogEntry{
		Timestamp:   time.Now(),
		ID:          "entry-1",
		ItemID:      "unit-1",
		ChangeType:  ChangeUpdate,
		ContentType: ContentUnit,
		ContentHash: &hash,
		SourceID:    &source,
		Data:        []byte{1, 2, 3},
		Version:     7,
		Synced:      true,
	}

	clone := original.Clone()

	assert.Equal(t, original.ID, clone.ID)
	assert.Equal(t, original.ItemID, clone.ItemID)
	assert.Equal(t, original.ChangeType, clone.ChangeType)
	assert.Equal(t, original.ContentType, clone.ContentType)
	assert.Equal(t, original.Version, clone.Version)
	assert.Equal(t, original.Synced, clone.Synced)
	assert.True(t, bytes.Equal(original.Data, clone.Data))

	// Модификация оригинала не должна влиять на клон
	original.Data[0] = 9
	*original.ContentHash = "changed"
	*original.SourceID = "peer-2"

	assert.NotEqual(t, original.Data[0], clone.Data[0])
	assert.Equal(t, "abc123", *clone.ContentHash)
	assert.Equal(t, "peer-1", *clone.SourceID)
}

func TestResolution_Terminal(t *testing.T) {
	assert.False(t, ResolutionPending.Terminal())
	assert.True(t, ResolutionLocal.Terminal())
	assert.True(t, ResolutionRemote.Terminal())
	assert.True(t, ResolutionForked.Terminal())
	assert.False(t, Resolution("bogus").Terminal())
}

func TestConflict_Pending(t *testing.T) {
	c := &Conflict{Resolution: ResolutionPending}
	assert.True(t, c.Pending())

	c.Resolution = ResolutionForked
	assert.False(t, c.Pending())
}

func TestConflict_Clone(t *testing.T) {
	localHash := "aaa"
	remoteHash := "bbb"

	original := &Conflict{
		DetectedAt:    time.Now(),
		ID:            "conflict-1",
		ItemID:        "unit-1",
		ItemName:      "Marauder MAD-3R",
		ContentType:   ContentUnit,
		LocalHash:     &localHash,
		RemoteHash:    &remoteHash,
		RemotePeerID:  "peer-1",
		RemoteData:    []byte(`{"tonnage":75}`),
		Resolution:    ResolutionPending,
		LocalVersion:  5,
		RemoteVersion: 6,
	}

	clone := original.Clone()

	assert.Equal(t, original.ID, clone.ID)
	assert.Equal(t, original.LocalVersion, clone.LocalVersion)
	assert.Equal(t, original.RemoteVersion, clone.RemoteVersion)

	*original.LocalHash = "changed"
	original.RemoteData[0] = 'x'

	assert.Equal(t, "aaa", *clone.LocalHash)
	assert.Equal(t, byte('{'), clone.RemoteData[0])
}
