package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apetrenko/mekvault/internal/models"
	"github.com/apetrenko/mekvault/internal/vault/storage"
)

// RecordChange appends an entry to the change log exactly as given
func (s *Storage) RecordChange(ctx context.Context, entry *models.ChangeLogEntry) error {
	query := `
		INSERT INTO change_log (
			id, item_id, change_type, content_type,
			version, content_hash, data, synced,
			source_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.ItemID,
		string(entry.ChangeType),
		string(entry.ContentType),
		entry.Version,
		nullString(entry.ContentHash),
		entry.Data,
		boolToInt(entry.Synced),
		nullString(entry.SourceID),
		entry.Timestamp.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert change log entry: %w", err)
	}

	return nil
}

// NextVersion returns the next per-item version for itemID
func (s *Storage) NextVersion(ctx context.Context, itemID string) (int64, error) {
	query := `SELECT COALESCE(MAX(version), 0) + 1 FROM change_log WHERE item_id = ?`

	var version int64
	if err := s.db.QueryRowContext(ctx, query, itemID).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get next version: %w", err)
	}

	return version, nil
}

// GetChangesSince returns up to limit entries with version greater than version,
// ordered by version then by append order
func (s *Storage) GetChangesSince(ctx context.Context, version int64, limit int) ([]*models.ChangeLogEntry, error) {
	query := `
		SELECT id, item_id, change_type, content_type,
		       version, content_hash, data, synced,
		       source_id, created_at
		FROM change_log
		WHERE version > ?
		ORDER BY version ASC, seq ASC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, version, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes since %d: %w", version, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetUnsynced returns all entries with Synced == false in append order
func (s *Storage) GetUnsynced(ctx context.Context) ([]*models.ChangeLogEntry, error) {
	query := `
		SELECT id, item_id, change_type, content_type,
		       version, content_hash, data, synced,
		       source_id, created_at
		FROM change_log
		WHERE synced = 0
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unsynced entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetCurrentVersion returns the highest version assigned so far, 0 for an empty log
func (s *Storage) GetCurrentVersion(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM change_log`

	var version int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}

	return version, nil
}

// GetEntry returns the entry with the given id
// Returns storage.ErrEntryNotFound if it doesn't exist
func (s *Storage) GetEntry(ctx context.Context, id string) (*models.ChangeLogEntry, error) {
	query := `
		SELECT id, item_id, change_type, content_type,
		       version, content_hash, data, synced,
		       source_id, created_at
		FROM change_log
		WHERE id = ?
	`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry %s: %w", id, err)
	}

	return entry, nil
}

// GetLatestForItem returns the entry with the highest version for itemID
// Returns storage.ErrEntryNotFound if the item has no entries
func (s *Storage) GetLatestForItem(ctx context.Context, itemID string) (*models.ChangeLogEntry, error) {
	query := `
		SELECT id, item_id, change_type, content_type,
		       version, content_hash, data, synced,
		       source_id, created_at
		FROM change_log
		WHERE item_id = ?
		ORDER BY version DESC, seq DESC
		LIMIT 1
	`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get latest entry for item %s: %w", itemID, err)
	}

	return entry, nil
}

// MarkSynced flips the Synced flag on the named entries
func (s *Storage) MarkSynced(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		`UPDATE change_log SET synced = 1 WHERE id IN (%s)`,
		placeholders(len(ids)),
	)

	if _, err := s.db.ExecContext(ctx, query, toArgs(ids)...); err != nil {
		return fmt.Errorf("failed to mark entries synced: %w", err)
	}

	return nil
}

// MarkAckedByPeer records that peerID has acknowledged the named entries
// Повторное подтверждение того же id безопасно (INSERT OR IGNORE)
func (s *Storage) MarkAckedByPeer(ctx context.Context, peerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `INSERT OR IGNORE INTO peer_acks (peer_id, entry_id, acked_at) VALUES (?, ?, ?)`
	now := time.Now().Unix()

	for _, id := range ids {
		if _, err := s.db.ExecContext(ctx, query, peerID, id, now); err != nil {
			return fmt.Errorf("failed to record ack for entry %s: %w", id, err)
		}
	}

	return nil
}

// PeersAcked returns the peer ids that have acknowledged the entry
func (s *Storage) PeersAcked(ctx context.Context, id string) ([]string, error) {
	query := `SELECT peer_id FROM peer_acks WHERE entry_id = ? ORDER BY peer_id`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query peer acks: %w", err)
	}
	defer rows.Close()

	var peers []string
	for rows.Next() {
		var peerID string
		if err := rows.Scan(&peerID); err != nil {
			return nil, fmt.Errorf("failed to scan peer ack: %w", err)
		}
		peers = append(peers, peerID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate peer acks: %w", err)
	}

	return peers, nil
}

// scanEntries читает все записи из rows
func scanEntries(rows *sql.Rows) ([]*models.ChangeLogEntry, error) {
	var entries []*models.ChangeLogEntry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// rowScanner абстрагирует *sql.Row и *sql.Rows для scanEntry
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry читает одну запись журнала
func scanEntry(row rowScanner) (*models.ChangeLogEntry, error) {
	var (
		entry       models.ChangeLogEntry
		changeType  string
		contentType string
		contentHash sql.NullString
		sourceID    sql.NullString
		synced      int
		createdAt   int64
	)

	err := row.Scan(
		&entry.ID,
		&entry.ItemID,
		&changeType,
		&contentType,
		&entry.Version,
		&contentHash,
		&entry.Data,
		&synced,
		&sourceID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ChangeType = models.ChangeType(changeType)
	entry.ContentType = models.ContentType(contentType)
	entry.ContentHash = fromNullString(contentHash)
	entry.SourceID = fromNullString(sourceID)
	entry.Synced = synced != 0
	entry.Timestamp = time.Unix(createdAt, 0)

	return &entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func toArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
