package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrenko/mekvault/internal/models"
	"github.com/apetrenko/mekvault/internal/vault/storage"
)

func testConflict(itemID string) *models.Conflict {
	localHash := "local-hash"
	remoteHash := "remote-hash"
	return &models.Conflict{
		ID:            uuid.New().String(),
		ItemID:        itemID,
		ItemName:      "Marauder MAD-3R",
		ContentType:   models.ContentUnit,
		LocalVersion:  5,
		LocalHash:     &localHash,
		RemoteVersion: 6,
		RemoteHash:    &remoteHash,
		RemotePeerID:  "peer-1",
		RemoteData:    []byte(`{"tonnage":80}`),
		Resolution:    models.ResolutionPending,
		DetectedAt:    time.Now(),
	}
}

func TestRecordConflict_AndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	conflict := testConflict("unit-1")
	require.NoError(t, s.RecordConflict(ctx, conflict))

	got, err := s.GetConflict(ctx, conflict.ID)
	require.NoError(t, err)

	assert.Equal(t, conflict.ItemID, got.ItemID)
	assert.Equal(t, conflict.ItemName, got.ItemName)
	assert.Equal(t, conflict.LocalVersion, got.LocalVersion)
	assert.Equal(t, conflict.RemoteVersion, got.RemoteVersion)
	assert.Equal(t, *conflict.LocalHash, *got.LocalHash)
	assert.Equal(t, *conflict.RemoteHash, *got.RemoteHash)
	assert.Equal(t, conflict.RemotePeerID, got.RemotePeerID)
	assert.Equal(t, models.ResolutionPending, got.Resolution)
}

func TestGetConflict_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetConflict(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestRecordConflict_UpsertsPendingByItem(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := testConflict("unit-1")
	require.NoError(t, s.RecordConflict(ctx, first))

	// Повторное обнаружение того же конфликта: новый ID, тот же элемент
	second := testConflict("unit-1")
	second.RemoteVersion = 7
	require.NoError(t, s.RecordConflict(ctx, second))

	// ID существующего pending конфликта возвращается вызывающему
	assert.Equal(t, first.ID, second.ID)

	pending, err := s.GetPendingConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, int64(7), pending[0].RemoteVersion)
}

func TestRecordConflict_NewConflictAfterResolution(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := testConflict("unit-1")
	require.NoError(t, s.RecordConflict(ctx, first))
	require.NoError(t, s.ResolveConflict(ctx, first.ID, models.ResolutionLocal))

	// После разрешения новый конфликт по тому же элементу создается заново
	second := testConflict("unit-1")
	require.NoError(t, s.RecordConflict(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)

	pending, err := s.GetPendingConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestResolveConflict_Terminal(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	conflict := testConflict("unit-1")
	require.NoError(t, s.RecordConflict(ctx, conflict))

	require.NoError(t, s.ResolveConflict(ctx, conflict.ID, models.ResolutionRemote))

	got, err := s.GetConflict(ctx, conflict.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionRemote, got.Resolution)

	// Повторное разрешение запрещено
	err = s.ResolveConflict(ctx, conflict.ID, models.ResolutionLocal)
	assert.ErrorIs(t, err, storage.ErrConflictResolved)
}

func TestResolveConflict_RejectsPending(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	conflict := testConflict("unit-1")
	require.NoError(t, s.RecordConflict(ctx, conflict))

	err := s.ResolveConflict(ctx, conflict.ID, models.ResolutionPending)
	assert.Error(t, err)
}

func TestResolveConflict_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.ResolveConflict(ctx, "missing", models.ResolutionLocal)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestGetPendingConflicts_ExcludesResolved(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	resolved := testConflict("unit-1")
	open := testConflict("unit-2")
	require.NoError(t, s.RecordConflict(ctx, resolved))
	require.NoError(t, s.RecordConflict(ctx, open))
	require.NoError(t, s.ResolveConflict(ctx, resolved.ID, models.ResolutionForked))

	pending, err := s.GetPendingConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, open.ID, pending[0].ID)
}
