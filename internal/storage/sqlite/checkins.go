package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/storage"
)

// CreateDailyCheckIn records one check-in per calendar day. A second call for
// the same date fails fast with storage.ErrAlreadyCheckedIn; the date
// uniqueness constraint is the backstop.
func (s *Store) CreateDailyCheckIn(checkIn models.DailyCheckIn) (models.DailyCheckIn, error) {
	if err := s.ensureOpen(); err != nil {
		return models.DailyCheckIn{}, err
	}

	if checkIn.Date == "" {
		checkIn.Date = time.Now().Format(constants.DateFormat)
	}
	checkIn.CreatedAt = nowString()

	tx, err := s.db.Begin()
	if err != nil {
		return models.DailyCheckIn{}, err
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRow("SELECT COUNT(*) FROM daily_check_ins WHERE date = ?", checkIn.Date).Scan(&existing); err != nil {
		return models.DailyCheckIn{}, err
	}
	if existing > 0 {
		return models.DailyCheckIn{}, fmt.Errorf("%s: %w", checkIn.Date, storage.ErrAlreadyCheckedIn)
	}

	result, err := tx.Exec(`
		INSERT INTO daily_check_ins (goal, energy, tone, thankful, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		checkIn.Goal, checkIn.Energy, checkIn.Tone, checkIn.Thankful, checkIn.Date, checkIn.CreatedAt)
	if err != nil {
		return models.DailyCheckIn{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	checkIn.ID, err = result.LastInsertId()
	if err != nil {
		return models.DailyCheckIn{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.DailyCheckIn{}, err
	}

	s.triggerBackup()
	return checkIn, nil
}

// GetDailyCheckIns lists all check-ins, most recent date first.
func (s *Store) GetDailyCheckIns() ([]models.DailyCheckIn, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty check-ins", "error", err)
		return []models.DailyCheckIn{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, goal, energy, tone, thankful, date, created_at
		FROM daily_check_ins ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkIns []models.DailyCheckIn
	for rows.Next() {
		var c models.DailyCheckIn
		if err := rows.Scan(&c.ID, &c.Goal, &c.Energy, &c.Tone, &c.Thankful, &c.Date, &c.CreatedAt); err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}

	return checkIns, rows.Err()
}

// GetTodayCheckIn returns today's check-in (local calendar day), or nil.
func (s *Store) GetTodayCheckIn() (*models.DailyCheckIn, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty check-in", "error", err)
		return nil, nil
	}

	today := time.Now().Format(constants.DateFormat)
	row := s.db.QueryRow(`
		SELECT id, goal, energy, tone, thankful, date, created_at
		FROM daily_check_ins WHERE date = ?`, today)

	var c models.DailyCheckIn
	err := row.Scan(&c.ID, &c.Goal, &c.Energy, &c.Tone, &c.Thankful, &c.Date, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}
