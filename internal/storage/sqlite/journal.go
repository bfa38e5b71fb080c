package sqlite

import (
	"fmt"

	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/storage"
)

// CreateJournalEntry appends a new entry. The timestamp is the logical event
// time; pass an empty string to use now.
func (s *Store) CreateJournalEntry(content, timestamp string) (models.JournalEntry, error) {
	if err := s.ensureOpen(); err != nil {
		return models.JournalEntry{}, err
	}

	now := nowString()
	if timestamp == "" {
		timestamp = now
	}

	entry := models.JournalEntry{
		Content:   content,
		Timestamp: timestamp,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.db.Exec(`
		INSERT INTO journal_entries (content, timestamp, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		entry.Content, entry.Timestamp, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to create journal entry: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return models.JournalEntry{}, err
	}

	s.triggerBackup()
	return entry, nil
}

// GetJournalEntries lists all entries, most recent logical time first.
func (s *Store) GetJournalEntries() ([]models.JournalEntry, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty journal", "error", err)
		return []models.JournalEntry{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, content, timestamp, created_at, updated_at
		FROM journal_entries ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.Content, &e.Timestamp, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpdateJournalEntry edits an entry's content. CreatedAt and the logical
// timestamp are untouched; only UpdatedAt moves.
func (s *Store) UpdateJournalEntry(id int64, content string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	result, err := s.db.Exec(
		"UPDATE journal_entries SET content = ?, updated_at = ? WHERE id = ?",
		content, nowString(), id)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("journal entry %d: %w", id, storage.ErrNotFound)
	}

	s.triggerBackup()
	return nil
}

// DeleteJournalEntry removes an entry by id.
func (s *Store) DeleteJournalEntry(id int64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	result, err := s.db.Exec("DELETE FROM journal_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("journal entry %d: %w", id, storage.ErrNotFound)
	}

	s.triggerBackup()
	return nil
}
