package sqlite

import (
	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
)

// LogSOSActivation appends to the panic-relief audit trail. Unlike every
// other write, failure degrades to a no-op returning the zero-id sentinel:
// losing an audit row must never block the calming-breath flow.
func (s *Store) LogSOSActivation(timestamp string) models.SOSLog {
	if err := s.ensureOpen(); err != nil {
		logger.Warn("SOS log skipped, store unavailable", "error", err)
		return models.SOSLog{}
	}

	now := nowString()
	if timestamp == "" {
		timestamp = now
	}

	entry := models.SOSLog{
		Timestamp: timestamp,
		CreatedAt: now,
	}

	result, err := s.db.Exec(
		"INSERT INTO sos_logs (timestamp, created_at) VALUES (?, ?)",
		entry.Timestamp, entry.CreatedAt)
	if err != nil {
		logger.Warn("SOS log write failed", "error", err)
		return models.SOSLog{}
	}

	if entry.ID, err = result.LastInsertId(); err != nil {
		logger.Warn("SOS log id unavailable", "error", err)
		return models.SOSLog{}
	}

	s.triggerBackup()
	return entry
}

// GetSOSLogs returns the most recent activations, newest first, capped for
// display.
func (s *Store) GetSOSLogs() ([]models.SOSLog, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty SOS logs", "error", err)
		return []models.SOSLog{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, timestamp, created_at
		FROM sos_logs ORDER BY timestamp DESC, id DESC LIMIT ?`,
		constants.SOSLogDisplayLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.SOSLog
	for rows.Next() {
		var l models.SOSLog
		if err := rows.Scan(&l.ID, &l.Timestamp, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// GetAllSOSLogs returns the full audit trail for snapshots, oldest first.
func (s *Store) GetAllSOSLogs() ([]models.SOSLog, error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("Store unavailable, returning empty SOS logs", "error", err)
		return []models.SOSLog{}, nil
	}

	rows, err := s.db.Query("SELECT id, timestamp, created_at FROM sos_logs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.SOSLog
	for rows.Next() {
		var l models.SOSLog
		if err := rows.Scan(&l.ID, &l.Timestamp, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
