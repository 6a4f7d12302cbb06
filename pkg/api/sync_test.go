package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrenko/mekvault/internal/models"
)

func TestBatchRoundTrip(t *testing.T) {
	hash := "abc123"
	entries := []*models.ChangeLogEntry{
		{
			Timestamp:   time.Now(),
			ID:          "entry-1",
			ItemID:      "unit-1",
			ChangeType:  models.ChangeUpdate,
			ContentType: models.ContentUnit,
			ContentHash: &hash,
			Data:        []byte(`{"tonnage":75}`),
			Version:     5,
			Synced:      true, // локальная бухгалтерия, в батч не попадает
		},
	}

	batch := NewBatch("node-a", 3, entries)
	assert.Equal(t, "node-a", batch.PeerID)
	assert.Equal(t, int64(3), batch.Since)
	require.Len(t, batch.Entries, 1)

	back := batch.Models()
	require.Len(t, back, 1)

	assert.Equal(t, "entry-1", back[0].ID)
	assert.Equal(t, "unit-1", back[0].ItemID)
	assert.Equal(t, models.ChangeUpdate, back[0].ChangeType)
	assert.Equal(t, models.ContentUnit, back[0].ContentType)
	assert.Equal(t, int64(5), back[0].Version)
	assert.Equal(t, "abc123", *back[0].ContentHash)
	assert.Equal(t, entries[0].Data, back[0].Data)

	// Принимающая сторона сама решает судьбу флага synced
	assert.False(t, back[0].Synced)
}
