// Package backup maintains a versioned JSON snapshot of every user-content
// table in the key-value area. The snapshot is a best-effort mirror taken
// after the structured-store write commits, not a transactional WAL: a crash
// between the two leaves the snapshot at most one write behind.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/kvstore"
	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/retry"
	"github.com/haven-app/haven/internal/storage"
)

// Snapshot is the point-in-time envelope persisted under the backup key. The
// encouragement catalog is excluded: it is static seed data, reseeded on any
// fresh store.
type Snapshot struct {
	Timestamp      string                `json:"timestamp"`
	Version        string                `json:"version"`
	User           *models.User          `json:"user"`
	SupportPerson  *models.SupportPerson `json:"supportPerson"`
	SobrietyData   *models.SobrietyData  `json:"sobrietyData"`
	UserReasons    []models.UserReason   `json:"userReasons"`
	JournalEntries []models.JournalEntry `json:"journalEntries"`
	Intentions     []models.Intention    `json:"intentions"`
	DailyCheckIns  []models.DailyCheckIn `json:"dailyCheckIns"`
	SOSLogs        []models.SOSLog       `json:"sosLogs"`
}

// Serializer snapshots the record store into the key-value area and replays
// snapshots back through the store's upsert paths.
type Serializer struct {
	store storage.Provider
	kv    *kvstore.Store
}

func NewSerializer(store storage.Provider, kv *kvstore.Store) *Serializer {
	return &Serializer{
		store: store,
		kv:    kv,
	}
}

// Backup writes a full snapshot of the current store state. The key-value
// write is retried because it can transiently fail; an oversized snapshot is
// logged but never blocked or truncated.
func (s *Serializer) Backup() error {
	snapshot, err := s.collect()
	if err != nil {
		return fmt.Errorf("failed to collect snapshot: %w", err)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if len(data) > constants.BackupSizeWarnByte {
		logger.Warn("Backup snapshot exceeds size threshold",
			"bytes", len(data), "threshold", constants.BackupSizeWarnByte)
	}

	err = retry.Do(func() error {
		return s.kv.SetString(constants.BackupKey, string(data))
	}, constants.BackupMaxAttempts, constants.BackupBaseDelayMs*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	logger.Debug("Backup snapshot written", "bytes", len(data))
	return nil
}

// BackupAsync is the fire-and-forget variant wired into the store's
// after-write hook. Failures are logged only: backup is a side-channel
// safety net and must never fail the originating write.
func (s *Serializer) BackupAsync() {
	if err := s.Backup(); err != nil {
		logger.Warn("Best-effort backup failed", "error", err)
	}
}

func (s *Serializer) collect() (Snapshot, error) {
	snapshot := Snapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   constants.BackupVersion,
	}

	var err error
	if snapshot.User, err = s.store.GetUser(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.SupportPerson, err = s.store.GetSupportPerson(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.SobrietyData, err = s.store.GetSobrietyData(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.UserReasons, err = s.store.GetUserReasons(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.JournalEntries, err = s.store.GetJournalEntries(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.Intentions, err = s.store.GetIntentions(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.DailyCheckIns, err = s.store.GetDailyCheckIns(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.SOSLogs, err = s.store.GetAllSOSLogs(); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// LastSnapshot reads and parses the persisted snapshot. Returns
// kvstore.ErrKeyNotFound when no snapshot has ever been written.
func (s *Serializer) LastSnapshot() (Snapshot, error) {
	raw, err := retry.DoValue(func() (string, error) {
		value, getErr := s.kv.GetString(constants.BackupKey)
		if errors.Is(getErr, kvstore.ErrKeyNotFound) {
			// Nothing to retry: a missing snapshot is a normal fresh install.
			return "", nil
		}
		return value, getErr
	}, constants.BackupMaxAttempts, constants.BackupBaseDelayMs*time.Millisecond)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if raw == "" {
		return Snapshot{}, kvstore.ErrKeyNotFound
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	return snapshot, nil
}

// DeleteSnapshot drops the persisted snapshot. Used by full data wipes.
func (s *Serializer) DeleteSnapshot() error {
	return s.kv.Delete(constants.BackupKey)
}
