package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/haven-app/haven/internal/models"
)

// Snapshot replay uses INSERT OR REPLACE keyed by the entity's original id so
// running the same restore twice cannot duplicate rows. For daily check-ins
// the date uniqueness constraint also participates: OR REPLACE evicts any
// conflicting row rather than failing mid-replay.

func (s *Store) UpsertUser(user models.User) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO users (id, name, has_completed_onboarding, setup_step, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.HasCompletedOnboarding, user.SetupStep, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore user: %w", err)
	}
	return nil
}

func (s *Store) UpsertSupportPerson(person models.SupportPerson) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO support_persons (id, name, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		person.ID, person.Name, person.Phone, person.CreatedAt, person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore support person: %w", err)
	}
	return nil
}

func (s *Store) UpsertSobrietyData(data models.SobrietyData) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	var soberDate sql.NullString
	if data.SoberDate != nil {
		soberDate = sql.NullString{String: *data.SoberDate, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO sobriety_data (id, tracking_sobriety, tracking_mode, sober_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		data.ID, data.TrackingSobriety, data.TrackingMode, soberDate, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore sobriety data: %w", err)
	}
	return nil
}

func (s *Store) UpsertUserReason(reason models.UserReason) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO user_reasons (id, reason, created_at)
		VALUES (?, ?, ?)`,
		reason.ID, reason.Reason, reason.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore reason: %w", err)
	}
	return nil
}

func (s *Store) UpsertJournalEntry(entry models.JournalEntry) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO journal_entries (id, content, timestamp, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Content, entry.Timestamp, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore journal entry: %w", err)
	}
	return nil
}

func (s *Store) UpsertIntention(intention models.Intention) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO intentions (id, content, timestamp, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		intention.ID, intention.Content, intention.Timestamp, intention.CreatedAt, intention.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore intention: %w", err)
	}
	return nil
}

func (s *Store) UpsertDailyCheckIn(checkIn models.DailyCheckIn) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO daily_check_ins (id, goal, energy, tone, thankful, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		checkIn.ID, checkIn.Goal, checkIn.Energy, checkIn.Tone, checkIn.Thankful, checkIn.Date, checkIn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore check-in: %w", err)
	}
	return nil
}

func (s *Store) UpsertSOSLog(log models.SOSLog) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO sos_logs (id, timestamp, created_at)
		VALUES (?, ?, ?)`,
		log.ID, log.Timestamp, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to restore SOS log: %w", err)
	}
	return nil
}

// HasUserData reports whether a user row exists.
func (s *Store) HasUserData() (bool, error) {
	if err := s.ensureOpen(); err != nil {
		return false, err
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasAnyContent reports whether at least one row exists in any content table
// (journal, intentions, check-ins, support person, sobriety data).
func (s *Store) HasAnyContent() (bool, error) {
	if err := s.ensureOpen(); err != nil {
		return false, err
	}

	var count int
	err := s.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM journal_entries) +
			(SELECT COUNT(*) FROM intentions) +
			(SELECT COUNT(*) FROM daily_check_ins) +
			(SELECT COUNT(*) FROM support_persons) +
			(SELECT COUNT(*) FROM sobriety_data)`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
