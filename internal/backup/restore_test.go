package backup

import (
	"path/filepath"
	"testing"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/kvstore"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/storage/sqlite"
)

// newRestoreTarget opens a second, empty store that shares the given
// key-value area, simulating a reinstall on the same device.
func newRestoreTarget(t *testing.T, kv *kvstore.Store) (*Serializer, *sqlite.Store) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "haven.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init restore target: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	return NewSerializer(store, kv), store
}

func TestRestoreIfNeeded(t *testing.T) {
	t.Run("replays the snapshot into a fresh store", func(t *testing.T) {
		serializer, store, kv := newTestSerializer(t)

		if _, err := store.SaveUser(models.User{Name: "Avery"}); err != nil {
			t.Fatalf("SaveUser() returned unexpected error: %v", err)
		}
		if _, err := store.CreateJournalEntry("keep me", "2026-01-10T10:00:00Z"); err != nil {
			t.Fatalf("CreateJournalEntry() returned unexpected error: %v", err)
		}
		if _, err := store.CreateDailyCheckIn(models.DailyCheckIn{
			Goal: "walk", Energy: constants.EnergyHigh, Tone: constants.ToneHappy, Date: "2026-01-10",
		}); err != nil {
			t.Fatalf("CreateDailyCheckIn() returned unexpected error: %v", err)
		}
		if err := serializer.Backup(); err != nil {
			t.Fatalf("Backup() returned unexpected error: %v", err)
		}

		targetSerializer, target := newRestoreTarget(t, kv)
		if err := targetSerializer.RestoreIfNeeded(); err != nil {
			t.Fatalf("RestoreIfNeeded() returned unexpected error: %v", err)
		}

		user, err := target.GetUser()
		if err != nil {
			t.Fatalf("GetUser() returned unexpected error: %v", err)
		}
		if user == nil || user.Name != "Avery" {
			t.Errorf("restored user = %+v, want Avery", user)
		}

		entries, err := target.GetJournalEntries()
		if err != nil {
			t.Fatalf("GetJournalEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].Content != "keep me" {
			t.Errorf("restored journal = %+v, want the original entry", entries)
		}

		checkIns, err := target.GetDailyCheckIns()
		if err != nil {
			t.Fatalf("GetDailyCheckIns() returned unexpected error: %v", err)
		}
		if len(checkIns) != 1 || checkIns[0].Date != "2026-01-10" {
			t.Errorf("restored check-ins = %+v, want one for 2026-01-10", checkIns)
		}
	})

	t.Run("leaves a populated store alone", func(t *testing.T) {
		serializer, store, kv := newTestSerializer(t)

		if _, err := store.SaveUser(models.User{Name: "snapshot user"}); err != nil {
			t.Fatalf("SaveUser() returned unexpected error: %v", err)
		}
		if _, err := store.CreateJournalEntry("from snapshot", ""); err != nil {
			t.Fatalf("CreateJournalEntry() returned unexpected error: %v", err)
		}
		if err := serializer.Backup(); err != nil {
			t.Fatalf("Backup() returned unexpected error: %v", err)
		}

		targetSerializer, target := newRestoreTarget(t, kv)
		if _, err := target.SaveUser(models.User{Name: "local user"}); err != nil {
			t.Fatalf("SaveUser() returned unexpected error: %v", err)
		}
		if _, err := target.CreateJournalEntry("local entry", ""); err != nil {
			t.Fatalf("CreateJournalEntry() returned unexpected error: %v", err)
		}

		if err := targetSerializer.RestoreIfNeeded(); err != nil {
			t.Fatalf("RestoreIfNeeded() returned unexpected error: %v", err)
		}

		user, err := target.GetUser()
		if err != nil {
			t.Fatalf("GetUser() returned unexpected error: %v", err)
		}
		if user.Name != "local user" {
			t.Errorf("user = %q, want the local user untouched", user.Name)
		}
		entries, err := target.GetJournalEntries()
		if err != nil {
			t.Fatalf("GetJournalEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].Content != "local entry" {
			t.Errorf("journal = %+v, want only the local entry", entries)
		}
	})

	t.Run("missing snapshot is a quiet no-op", func(t *testing.T) {
		serializer, store, _ := newTestSerializer(t)

		if err := serializer.RestoreIfNeeded(); err != nil {
			t.Fatalf("RestoreIfNeeded() returned unexpected error: %v", err)
		}

		has, err := store.HasAnyContent()
		if err != nil {
			t.Fatalf("HasAnyContent() returned unexpected error: %v", err)
		}
		if has {
			t.Error("store gained content from a missing snapshot")
		}
	})

	t.Run("corrupt snapshot starts empty without failing", func(t *testing.T) {
		serializer, store, kv := newTestSerializer(t)

		if err := kv.SetString(constants.BackupKey, "corrupted beyond repair"); err != nil {
			t.Fatalf("failed to plant corrupt snapshot: %v", err)
		}

		if err := serializer.RestoreIfNeeded(); err != nil {
			t.Fatalf("RestoreIfNeeded() = %v, want nil for a corrupt snapshot", err)
		}

		has, err := store.HasAnyContent()
		if err != nil {
			t.Fatalf("HasAnyContent() returned unexpected error: %v", err)
		}
		if has {
			t.Error("store gained content from a corrupt snapshot")
		}
	})
}

func TestReplay(t *testing.T) {
	t.Run("replaying twice yields the same state", func(t *testing.T) {
		serializer, store, kv := newTestSerializer(t)

		if _, err := store.SaveUser(models.User{Name: "Avery"}); err != nil {
			t.Fatalf("SaveUser() returned unexpected error: %v", err)
		}
		if _, err := store.CreateJournalEntry("once", ""); err != nil {
			t.Fatalf("CreateJournalEntry() returned unexpected error: %v", err)
		}
		if _, err := store.ReplaceUserReasons([]string{"family", "health"}); err != nil {
			t.Fatalf("ReplaceUserReasons() returned unexpected error: %v", err)
		}
		if err := serializer.Backup(); err != nil {
			t.Fatalf("Backup() returned unexpected error: %v", err)
		}

		targetSerializer, target := newRestoreTarget(t, kv)
		snapshot, err := targetSerializer.LastSnapshot()
		if err != nil {
			t.Fatalf("LastSnapshot() returned unexpected error: %v", err)
		}

		if err := targetSerializer.Replay(snapshot); err != nil {
			t.Fatalf("first Replay() returned unexpected error: %v", err)
		}
		if err := targetSerializer.Replay(snapshot); err != nil {
			t.Fatalf("second Replay() returned unexpected error: %v", err)
		}

		entries, err := target.GetJournalEntries()
		if err != nil {
			t.Fatalf("GetJournalEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("got %d journal entries after double replay, want 1", len(entries))
		}
		reasons, err := target.GetUserReasons()
		if err != nil {
			t.Fatalf("GetUserReasons() returned unexpected error: %v", err)
		}
		if len(reasons) != 2 {
			t.Errorf("got %d reasons after double replay, want 2", len(reasons))
		}
	})
}
