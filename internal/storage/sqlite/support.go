package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
)

// SaveSupportPerson stores the one emergency contact, replacing any previous
// one. The fixed-id upsert runs in a transaction so a reader never sees the
// contact momentarily missing.
func (s *Store) SaveSupportPerson(name, phone string) (models.SupportPerson, error) {
	if err := s.ensureOpen(); err != nil {
		return models.SupportPerson{}, err
	}

	now := nowString()
	person := models.SupportPerson{
		ID:        singletonID,
		Name:      name,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.SupportPerson{}, err
	}
	defer tx.Rollback()

	// Clear any rows restored under other ids, then upsert the fixed row.
	if _, err := tx.Exec("DELETE FROM support_persons WHERE id != ?", singletonID); err != nil {
		return models.SupportPerson{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO support_persons (id, name, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			phone = excluded.phone,
			updated_at = excluded.updated_at`,
		person.ID, person.Name, person.Phone, person.CreatedAt, person.UpdatedAt,
	)
	if err != nil {
		return models.SupportPerson{}, fmt.Errorf("failed to save support person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.SupportPerson{}, err
	}

	s.triggerBackup()
	return person, nil
}

// GetSupportPerson returns the emergency contact, or nil when none is set.
func (s *Store) GetSupportPerson() (*models.SupportPerson, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty support person", "error", err)
		return nil, nil
	}

	row := s.db.QueryRow(`
		SELECT id, name, phone, created_at, updated_at
		FROM support_persons ORDER BY created_at DESC, id DESC LIMIT 1`)

	var p models.SupportPerson
	err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

// SaveSobrietyData stores the user's tracking preferences, replacing any
// previous row.
func (s *Store) SaveSobrietyData(data models.SobrietyData) (models.SobrietyData, error) {
	if err := s.ensureOpen(); err != nil {
		return models.SobrietyData{}, err
	}

	now := nowString()
	if data.CreatedAt == "" {
		data.CreatedAt = now
	}
	data.UpdatedAt = now
	data.ID = singletonID

	var soberDate sql.NullString
	if data.SoberDate != nil {
		soberDate = sql.NullString{String: *data.SoberDate, Valid: true}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.SobrietyData{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sobriety_data WHERE id != ?", singletonID); err != nil {
		return models.SobrietyData{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO sobriety_data (id, tracking_sobriety, tracking_mode, sober_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tracking_sobriety = excluded.tracking_sobriety,
			tracking_mode = excluded.tracking_mode,
			sober_date = excluded.sober_date,
			updated_at = excluded.updated_at`,
		data.ID, data.TrackingSobriety, data.TrackingMode, soberDate, data.CreatedAt, data.UpdatedAt,
	)
	if err != nil {
		return models.SobrietyData{}, fmt.Errorf("failed to save sobriety data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.SobrietyData{}, err
	}

	s.triggerBackup()
	return data, nil
}

// GetSobrietyData returns the tracking preferences, or nil when none are set.
func (s *Store) GetSobrietyData() (*models.SobrietyData, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty sobriety data", "error", err)
		return nil, nil
	}

	row := s.db.QueryRow(`
		SELECT id, tracking_sobriety, tracking_mode, sober_date, created_at, updated_at
		FROM sobriety_data ORDER BY created_at DESC, id DESC LIMIT 1`)

	var d models.SobrietyData
	var soberDate sql.NullString
	err := row.Scan(&d.ID, &d.TrackingSobriety, &d.TrackingMode, &soberDate, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if soberDate.Valid {
		d.SoberDate = &soberDate.String
	}

	return &d, nil
}

// ReplaceUserReasons swaps the whole motivation set in one transaction.
func (s *Store) ReplaceUserReasons(reasons []string) ([]models.UserReason, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM user_reasons"); err != nil {
		return nil, fmt.Errorf("failed to clear reasons: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO user_reasons (reason, created_at) VALUES (?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	now := nowString()
	saved := make([]models.UserReason, 0, len(reasons))
	for _, reason := range reasons {
		result, err := stmt.Exec(reason, now)
		if err != nil {
			return nil, fmt.Errorf("failed to insert reason: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		saved = append(saved, models.UserReason{ID: id, Reason: reason, CreatedAt: now})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.triggerBackup()
	return saved, nil
}

// GetUserReasons lists the motivation set in insertion order.
func (s *Store) GetUserReasons() ([]models.UserReason, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty reasons", "error", err)
		return []models.UserReason{}, nil
	}

	rows, err := s.db.Query("SELECT id, reason, created_at FROM user_reasons ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reasons []models.UserReason
	for rows.Next() {
		var r models.UserReason
		if err := rows.Scan(&r.ID, &r.Reason, &r.CreatedAt); err != nil {
			return nil, err
		}
		reasons = append(reasons, r)
	}

	return reasons, rows.Err()
}
