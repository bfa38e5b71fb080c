package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/storage"
)

// GetEncouragements lists the whole catalog in seed order.
func (s *Store) GetEncouragements() ([]models.Encouragement, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty encouragements", "error", err)
		return []models.Encouragement{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, message, seen, created_at, updated_at
		FROM encouragements ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Encouragement
	for rows.Next() {
		var e models.Encouragement
		if err := rows.Scan(&e.ID, &e.Message, &e.Seen, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, e)
	}

	return messages, rows.Err()
}

// GetRandomUnseenEncouragement picks an unseen message at random, or nil when
// every message has been seen.
func (s *Store) GetRandomUnseenEncouragement() (*models.Encouragement, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning no encouragement", "error", err)
		return nil, nil
	}

	row := s.db.QueryRow(`
		SELECT id, message, seen, created_at, updated_at
		FROM encouragements WHERE seen = 0 ORDER BY RANDOM() LIMIT 1`)

	var e models.Encouragement
	err := row.Scan(&e.ID, &e.Message, &e.Seen, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &e, nil
}

// MarkEncouragementSeen flips one message's seen flag.
func (s *Store) MarkEncouragementSeen(id int64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	result, err := s.db.Exec(
		"UPDATE encouragements SET seen = 1, updated_at = ? WHERE id = ?",
		nowString(), id)
	if err != nil {
		return fmt.Errorf("failed to mark encouragement seen: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("encouragement %d: %w", id, storage.ErrNotFound)
	}

	return nil
}

// ResetAllEncouragements flips every seen flag back to false.
func (s *Store) ResetAllEncouragements() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec("UPDATE encouragements SET seen = 0, updated_at = ?", nowString())
	if err != nil {
		return fmt.Errorf("failed to reset encouragements: %w", err)
	}

	return nil
}

// GetEncouragementStats summarizes catalog progress.
func (s *Store) GetEncouragementStats() (models.EncouragementStats, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty stats", "error", err)
		return models.EncouragementStats{}, nil
	}

	var stats models.EncouragementStats
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(seen), 0) FROM encouragements`).Scan(&stats.Total, &stats.Seen)
	if err != nil {
		return models.EncouragementStats{}, err
	}

	stats.Unseen = stats.Total - stats.Seen
	return stats, nil
}
