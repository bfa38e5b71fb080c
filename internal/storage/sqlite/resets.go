package sqlite

import "fmt"

// userContentTables are every table holding user-generated content. The
// encouragements catalog is deliberately absent: it is static seed data.
var userContentTables = []string{
	"users",
	"support_persons",
	"sobriety_data",
	"user_reasons",
	"journal_entries",
	"intentions",
	"daily_check_ins",
	"sos_logs",
}

// ClearUserData deletes every user-content row but preserves the
// encouragement catalog, seen flags included.
func (s *Store) ClearUserData() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range userContentTables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// ClearAllData is ClearUserData plus a reset of the encouragement seen flags.
func (s *Store) ClearAllData() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range userContentTables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec("UPDATE encouragements SET seen = 0, updated_at = ?", nowString()); err != nil {
		return fmt.Errorf("failed to reset encouragements: %w", err)
	}

	return tx.Commit()
}
