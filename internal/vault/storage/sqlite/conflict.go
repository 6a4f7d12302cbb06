package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/apetrenko/mekvault/internal/models"
	"github.com/apetrenko/mekvault/internal/vault/storage"
)

// RecordConflict stores a conflict. While a pending conflict exists for the
// same item the call upserts it in place, so repeated detection of the same
// divergence never creates duplicates.
func (s *Storage) RecordConflict(ctx context.Context, conflict *models.Conflict) error {
	// Проверяем существующий pending конфликт для этого элемента
	var existingID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM conflicts WHERE item_id = ? AND resolution = 'pending'`,
		conflict.ItemID,
	).Scan(&existingID)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check existing conflict: %w", err)
	}

	if existingID != "" {
		// Обновляем существующий pending конфликт на месте
		query := `
			UPDATE conflicts
			SET item_name = ?, content_type = ?, local_version = ?, local_hash = ?,
			    remote_version = ?, remote_hash = ?, remote_peer_id = ?, remote_data = ?,
			    detected_at = ?
			WHERE id = ?
		`

		_, err := s.db.ExecContext(ctx, query,
			conflict.ItemName,
			string(conflict.ContentType),
			conflict.LocalVersion,
			nullString(conflict.LocalHash),
			conflict.RemoteVersion,
			nullString(conflict.RemoteHash),
			conflict.RemotePeerID,
			conflict.RemoteData,
			conflict.DetectedAt.Unix(),
			existingID,
		)
		if err != nil {
			return fmt.Errorf("failed to update conflict: %w", err)
		}

		// Сообщаем вызывающему идентификатор существующего конфликта
		conflict.ID = existingID
		return nil
	}

	query := `
		INSERT INTO conflicts (
			id, item_id, item_name, content_type,
			local_version, local_hash, remote_version, remote_hash,
			remote_peer_id, remote_data, resolution, detected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		conflict.ID,
		conflict.ItemID,
		conflict.ItemName,
		string(conflict.ContentType),
		conflict.LocalVersion,
		nullString(conflict.LocalHash),
		conflict.RemoteVersion,
		nullString(conflict.RemoteHash),
		conflict.RemotePeerID,
		conflict.RemoteData,
		string(models.ResolutionPending),
		conflict.DetectedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conflict: %w", err)
	}

	return nil
}

// GetPendingConflicts returns all conflicts awaiting resolution
func (s *Storage) GetPendingConflicts(ctx context.Context) ([]*models.Conflict, error) {
	query := selectConflict + ` WHERE resolution = 'pending' ORDER BY detected_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []*models.Conflict
	for rows.Next() {
		conflict, err := scanConflict(rows)
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, conflict)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflicts: %w", err)
	}

	return conflicts, nil
}

// GetConflict returns a conflict by id
// Returns storage.ErrConflictNotFound if it doesn't exist
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.Conflict, error) {
	query := selectConflict + ` WHERE id = ?`

	conflict, err := scanConflict(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get conflict %s: %w", id, err)
	}

	return conflict, nil
}

// ResolveConflict transitions a pending conflict to a terminal resolution
// Переход терминальный: повторное разрешение возвращает ErrConflictResolved
func (s *Storage) ResolveConflict(ctx context.Context, id string, resolution models.Resolution) error {
	if !resolution.Terminal() {
		return fmt.Errorf("resolution %q is not a terminal state", resolution)
	}

	existing, err := s.GetConflict(ctx, id)
	if err != nil {
		return err
	}

	if !existing.Pending() {
		return storage.ErrConflictResolved
	}

	query := `UPDATE conflicts SET resolution = ? WHERE id = ? AND resolution = 'pending'`

	if _, err := s.db.ExecContext(ctx, query, string(resolution), id); err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	return nil
}

const selectConflict = `
	SELECT id, item_id, item_name, content_type,
	       local_version, local_hash, remote_version, remote_hash,
	       remote_peer_id, remote_data, resolution, detected_at
	FROM conflicts`

// scanConflict читает один конфликт
func scanConflict(row rowScanner) (*models.Conflict, error) {
	var (
		conflict    models.Conflict
		contentType string
		localHash   sql.NullString
		remoteHash  sql.NullString
		resolution  string
		detectedAt  int64
	)

	err := row.Scan(
		&conflict.ID,
		&conflict.ItemID,
		&conflict.ItemName,
		&contentType,
		&conflict.LocalVersion,
		&localHash,
		&conflict.RemoteVersion,
		&remoteHash,
		&conflict.RemotePeerID,
		&conflict.RemoteData,
		&resolution,
		&detectedAt,
	)
	if err != nil {
		return nil, err
	}

	conflict.ContentType = models.ContentType(contentType)
	conflict.LocalHash = fromNullString(localHash)
	conflict.RemoteHash = fromNullString(remoteHash)
	conflict.Resolution = models.Resolution(resolution)
	conflict.DetectedAt = time.Unix(detectedAt, 0)

	return &conflict, nil
}
