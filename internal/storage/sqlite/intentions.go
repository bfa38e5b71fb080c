package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/storage"
)

// CreateIntention records a new intention note.
func (s *Store) CreateIntention(content, timestamp string) (models.Intention, error) {
	if err := s.ensureOpen(); err != nil {
		return models.Intention{}, err
	}

	now := nowString()
	if timestamp == "" {
		timestamp = now
	}

	intention := models.Intention{
		Content:   content,
		Timestamp: timestamp,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.db.Exec(`
		INSERT INTO intentions (content, timestamp, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		intention.Content, intention.Timestamp, intention.CreatedAt, intention.UpdatedAt)
	if err != nil {
		return models.Intention{}, fmt.Errorf("failed to create intention: %w", err)
	}

	intention.ID, err = result.LastInsertId()
	if err != nil {
		return models.Intention{}, err
	}

	s.triggerBackup()
	return intention, nil
}

// GetIntentions lists all intentions, most recent logical time first.
func (s *Store) GetIntentions() ([]models.Intention, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty intentions", "error", err)
		return []models.Intention{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, content, timestamp, created_at, updated_at
		FROM intentions ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intentions []models.Intention
	for rows.Next() {
		var i models.Intention
		if err := rows.Scan(&i.ID, &i.Content, &i.Timestamp, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		intentions = append(intentions, i)
	}

	return intentions, rows.Err()
}

// GetCurrentIntention returns the most recent intention by logical timestamp,
// or nil when none exists.
func (s *Store) GetCurrentIntention() (*models.Intention, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty intention", "error", err)
		return nil, nil
	}

	row := s.db.QueryRow(`
		SELECT id, content, timestamp, created_at, updated_at
		FROM intentions ORDER BY timestamp DESC, id DESC LIMIT 1`)

	var i models.Intention
	err := row.Scan(&i.ID, &i.Content, &i.Timestamp, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &i, nil
}

// UpdateIntention edits an intention's content; only UpdatedAt moves.
func (s *Store) UpdateIntention(id int64, content string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	result, err := s.db.Exec(
		"UPDATE intentions SET content = ?, updated_at = ? WHERE id = ?",
		content, nowString(), id)
	if err != nil {
		return fmt.Errorf("failed to update intention: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("intention %d: %w", id, storage.ErrNotFound)
	}

	s.triggerBackup()
	return nil
}

// DeleteIntention removes an intention by id.
func (s *Store) DeleteIntention(id int64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	result, err := s.db.Exec("DELETE FROM intentions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete intention: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("intention %d: %w", id, storage.ErrNotFound)
	}

	s.triggerBackup()
	return nil
}
