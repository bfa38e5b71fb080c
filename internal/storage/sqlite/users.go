package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
)

// singletonID is the fixed primary key used for singleton-by-convention rows
// (user, support person, sobriety data). Saving through a fixed-id upsert in
// a transaction means a concurrent reader can never observe zero rows
// mid-save.
const singletonID = 1

// SaveUser stores the current user profile. At most one logical user exists;
// the row is keyed by the fixed singleton id.
func (s *Store) SaveUser(user models.User) (models.User, error) {
	if err := s.ensureOpen(); err != nil {
		return models.User{}, err
	}

	now := nowString()
	if user.CreatedAt == "" {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.ID = singletonID

	tx, err := s.db.Begin()
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	// Clear any rows restored under other ids, then upsert the fixed row.
	if _, err := tx.Exec("DELETE FROM users WHERE id != ?", singletonID); err != nil {
		return models.User{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO users (id, name, has_completed_onboarding, setup_step, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			has_completed_onboarding = excluded.has_completed_onboarding,
			setup_step = excluded.setup_step,
			updated_at = excluded.updated_at`,
		user.ID, user.Name, user.HasCompletedOnboarding, user.SetupStep, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}

	s.triggerBackup()
	return user, nil
}

// GetUser returns the current user, identified by "most recently created",
// or nil when no user exists yet.
func (s *Store) GetUser() (*models.User, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty user", "error", err)
		return nil, nil
	}

	row := s.db.QueryRow(`
		SELECT id, name, has_completed_onboarding, setup_step, created_at, updated_at
		FROM users ORDER BY created_at DESC, id DESC LIMIT 1`)

	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.HasCompletedOnboarding, &u.SetupStep, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// UpdateUserName renames the current user. Fails if no user exists.
func (s *Store) UpdateUserName(name string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE users SET name = ?, updated_at = ?
		WHERE id = (SELECT id FROM users ORDER BY created_at DESC, id DESC LIMIT 1)`,
		name, nowString())
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no user to rename")
	}

	s.triggerBackup()
	return nil
}

// SetOnboardingComplete records onboarding progress on the user row.
func (s *Store) SetOnboardingComplete(done bool) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		UPDATE users SET has_completed_onboarding = ?, updated_at = ?
		WHERE id = (SELECT id FROM users ORDER BY created_at DESC, id DESC LIMIT 1)`,
		done, nowString())
	if err != nil {
		return fmt.Errorf("failed to update onboarding flag: %w", err)
	}

	s.triggerBackup()
	return nil
}

// SetSetupStep records the current onboarding wizard step on the user row.
func (s *Store) SetSetupStep(step int) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		UPDATE users SET setup_step = ?, updated_at = ?
		WHERE id = (SELECT id FROM users ORDER BY created_at DESC, id DESC LIMIT 1)`,
		step, nowString())
	if err != nil {
		return fmt.Errorf("failed to update setup step: %w", err)
	}

	s.triggerBackup()
	return nil
}
