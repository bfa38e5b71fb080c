package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/haven-app/haven/internal/constants"
)

func TestLogSOSActivation(t *testing.T) {
	t.Run("records an activation", func(t *testing.T) {
		store := setupTestStore(t)

		entry := store.LogSOSActivation("")
		if entry.ID == 0 {
			t.Fatal("got zero-id sentinel, want a recorded activation")
		}
		if entry.Timestamp == "" {
			t.Error("expected timestamp to default to now")
		}
	})

	t.Run("degrades to no-op when the store is unusable", func(t *testing.T) {
		// A regular file where the config directory should be makes the
		// store unopenable.
		dir := t.TempDir()
		occupied := filepath.Join(dir, "occupied")
		if err := os.WriteFile(occupied, []byte("not a directory"), 0600); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		store := NewStore(filepath.Join(occupied, "haven.db"))

		entry := store.LogSOSActivation("")
		if entry.ID != 0 {
			t.Errorf("got id %d, want the zero-id sentinel", entry.ID)
		}
	})
}

func TestGetSOSLogs(t *testing.T) {
	t.Run("newest first, capped for display", func(t *testing.T) {
		store := setupTestStore(t)

		total := constants.SOSLogDisplayLimit + 5
		for i := 0; i < total; i++ {
			ts := fmt.Sprintf("2026-01-01T%02d:%02d:00Z", i/60, i%60)
			if entry := store.LogSOSActivation(ts); entry.ID == 0 {
				t.Fatalf("activation %d was not recorded", i)
			}
		}

		logs, err := store.GetSOSLogs()
		if err != nil {
			t.Fatalf("GetSOSLogs() returned unexpected error: %v", err)
		}
		if len(logs) != constants.SOSLogDisplayLimit {
			t.Fatalf("got %d logs, want cap of %d", len(logs), constants.SOSLogDisplayLimit)
		}
		for i := 1; i < len(logs); i++ {
			if logs[i-1].Timestamp < logs[i].Timestamp {
				t.Fatalf("logs not newest first at index %d: %s < %s", i, logs[i-1].Timestamp, logs[i].Timestamp)
			}
		}
	})

	t.Run("full trail available for snapshots", func(t *testing.T) {
		store := setupTestStore(t)

		total := constants.SOSLogDisplayLimit + 5
		for i := 0; i < total; i++ {
			ts := fmt.Sprintf("2026-01-01T%02d:%02d:00Z", i/60, i%60)
			store.LogSOSActivation(ts)
		}

		all, err := store.GetAllSOSLogs()
		if err != nil {
			t.Fatalf("GetAllSOSLogs() returned unexpected error: %v", err)
		}
		if len(all) != total {
			t.Errorf("got %d logs, want the full trail of %d", len(all), total)
		}
	})
}
