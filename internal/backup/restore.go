package backup

import (
	"errors"
	"fmt"
	"time"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/kvstore"
	"github.com/haven-app/haven/internal/logger"
)

// RestoreIfNeeded replays the last snapshot when the structured store looks
// freshly created or wiped, so a reinstall or storage reset does not silently
// erase the user's history. Runs after schema creation and catalog seeding.
//
// Every failure path is non-fatal: startup must always reach a usable (if
// empty) store.
func (s *Serializer) RestoreIfNeeded() error {
	hasUser, err := s.store.HasUserData()
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	hasContent, err := s.store.HasAnyContent()
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}

	// Normal launch: the store carries data, leave it alone.
	if hasUser && hasContent {
		return nil
	}

	snapshot, err := s.LastSnapshot()
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Debug("No backup snapshot found, nothing to restore")
			return nil
		}
		logger.Warn("Backup snapshot unusable, starting empty", "error", err)
		return nil
	}

	if snapshot.Version != constants.BackupVersion {
		logger.Warn("Backup snapshot version differs from current",
			"snapshot", snapshot.Version, "current", constants.BackupVersion)
	}

	if ts, parseErr := time.Parse(time.RFC3339, snapshot.Timestamp); parseErr == nil {
		age := time.Since(ts)
		if age > constants.BackupStaleDays*24*time.Hour {
			logger.Warn("Backup snapshot is stale", "age", age.Round(time.Hour))
		}
	}

	logger.Info("Restoring from backup snapshot", "timestamp", snapshot.Timestamp)
	return s.Replay(snapshot)
}

// Replay applies a snapshot through the store's insert-or-replace paths in
// ownership order. Replaying the same snapshot twice yields the same final
// state.
func (s *Serializer) Replay(snapshot Snapshot) error {
	if snapshot.User != nil {
		if err := s.store.UpsertUser(*snapshot.User); err != nil {
			return err
		}
	}
	if snapshot.SupportPerson != nil {
		if err := s.store.UpsertSupportPerson(*snapshot.SupportPerson); err != nil {
			return err
		}
	}
	if snapshot.SobrietyData != nil {
		if err := s.store.UpsertSobrietyData(*snapshot.SobrietyData); err != nil {
			return err
		}
	}
	for _, reason := range snapshot.UserReasons {
		if err := s.store.UpsertUserReason(reason); err != nil {
			return err
		}
	}
	for _, entry := range snapshot.JournalEntries {
		if err := s.store.UpsertJournalEntry(entry); err != nil {
			return err
		}
	}
	for _, intention := range snapshot.Intentions {
		if err := s.store.UpsertIntention(intention); err != nil {
			return err
		}
	}
	for _, checkIn := range snapshot.DailyCheckIns {
		if err := s.store.UpsertDailyCheckIn(checkIn); err != nil {
			return err
		}
	}
	for _, sosLog := range snapshot.SOSLogs {
		if err := s.store.UpsertSOSLog(sosLog); err != nil {
			return err
		}
	}

	return nil
}
