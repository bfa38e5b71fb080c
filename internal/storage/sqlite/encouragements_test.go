package sqlite

import (
	"errors"
	"testing"

	"github.com/haven-app/haven/internal/storage"
)

func TestGetRandomUnseenEncouragement(t *testing.T) {
	t.Run("only serves unseen messages", func(t *testing.T) {
		store := setupTestStore(t)

		all, err := store.GetEncouragements()
		if err != nil {
			t.Fatalf("GetEncouragements() returned unexpected error: %v", err)
		}
		if len(all) < 2 {
			t.Fatalf("catalog too small for test: %d", len(all))
		}

		// Mark everything seen except the first message.
		for _, enc := range all[1:] {
			if err := store.MarkEncouragementSeen(enc.ID); err != nil {
				t.Fatalf("MarkEncouragementSeen(%d) returned unexpected error: %v", enc.ID, err)
			}
		}

		enc, err := store.GetRandomUnseenEncouragement()
		if err != nil {
			t.Fatalf("GetRandomUnseenEncouragement() returned unexpected error: %v", err)
		}
		if enc == nil || enc.ID != all[0].ID {
			t.Errorf("got %+v, want the single unseen message %d", enc, all[0].ID)
		}
	})

	t.Run("nil when the pool is exhausted", func(t *testing.T) {
		store := setupTestStore(t)

		all, err := store.GetEncouragements()
		if err != nil {
			t.Fatalf("GetEncouragements() returned unexpected error: %v", err)
		}
		for _, enc := range all {
			if err := store.MarkEncouragementSeen(enc.ID); err != nil {
				t.Fatalf("MarkEncouragementSeen(%d) returned unexpected error: %v", enc.ID, err)
			}
		}

		enc, err := store.GetRandomUnseenEncouragement()
		if err != nil {
			t.Fatalf("GetRandomUnseenEncouragement() returned unexpected error: %v", err)
		}
		if enc != nil {
			t.Errorf("got %+v, want nil with an exhausted pool", enc)
		}
	})
}

func TestMarkEncouragementSeen(t *testing.T) {
	t.Run("unknown id yields ErrNotFound", func(t *testing.T) {
		store := setupTestStore(t)

		if err := store.MarkEncouragementSeen(99999); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestResetAllEncouragements(t *testing.T) {
	store := setupTestStore(t)

	all, err := store.GetEncouragements()
	if err != nil {
		t.Fatalf("GetEncouragements() returned unexpected error: %v", err)
	}
	for _, enc := range all {
		if err := store.MarkEncouragementSeen(enc.ID); err != nil {
			t.Fatalf("MarkEncouragementSeen(%d) returned unexpected error: %v", enc.ID, err)
		}
	}

	if err := store.ResetAllEncouragements(); err != nil {
		t.Fatalf("ResetAllEncouragements() returned unexpected error: %v", err)
	}

	stats, err := store.GetEncouragementStats()
	if err != nil {
		t.Fatalf("GetEncouragementStats() returned unexpected error: %v", err)
	}
	if stats.Seen != 0 || stats.Unseen != stats.Total {
		t.Errorf("after reset stats = %+v, want all unseen", stats)
	}
}

func TestGetEncouragementStats(t *testing.T) {
	store := setupTestStore(t)

	all, err := store.GetEncouragements()
	if err != nil {
		t.Fatalf("GetEncouragements() returned unexpected error: %v", err)
	}
	if err := store.MarkEncouragementSeen(all[0].ID); err != nil {
		t.Fatalf("MarkEncouragementSeen() returned unexpected error: %v", err)
	}

	stats, err := store.GetEncouragementStats()
	if err != nil {
		t.Fatalf("GetEncouragementStats() returned unexpected error: %v", err)
	}
	if stats.Total != len(all) {
		t.Errorf("Total = %d, want %d", stats.Total, len(all))
	}
	if stats.Seen != 1 {
		t.Errorf("Seen = %d, want 1", stats.Seen)
	}
	if stats.Unseen != stats.Total-1 {
		t.Errorf("Unseen = %d, want %d", stats.Unseen, stats.Total-1)
	}
}

func TestClearUserData(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateJournalEntry("gone soon", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	all, err := store.GetEncouragements()
	if err != nil {
		t.Fatalf("GetEncouragements() returned unexpected error: %v", err)
	}
	if err := store.MarkEncouragementSeen(all[0].ID); err != nil {
		t.Fatalf("MarkEncouragementSeen() returned unexpected error: %v", err)
	}

	if err := store.ClearUserData(); err != nil {
		t.Fatalf("ClearUserData() returned unexpected error: %v", err)
	}

	entries, err := store.GetJournalEntries()
	if err != nil {
		t.Fatalf("GetJournalEntries() returned unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d journal entries, want 0", len(entries))
	}

	// Catalog survives, seen flags included.
	stats, err := store.GetEncouragementStats()
	if err != nil {
		t.Fatalf("GetEncouragementStats() returned unexpected error: %v", err)
	}
	if stats.Total != len(all) {
		t.Errorf("catalog size = %d after clear, want %d", stats.Total, len(all))
	}
	if stats.Seen != 1 {
		t.Errorf("Seen = %d after clear, want 1 (flags preserved)", stats.Seen)
	}
}

func TestClearAllData(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateJournalEntry("gone soon", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	all, err := store.GetEncouragements()
	if err != nil {
		t.Fatalf("GetEncouragements() returned unexpected error: %v", err)
	}
	if err := store.MarkEncouragementSeen(all[0].ID); err != nil {
		t.Fatalf("MarkEncouragementSeen() returned unexpected error: %v", err)
	}

	if err := store.ClearAllData(); err != nil {
		t.Fatalf("ClearAllData() returned unexpected error: %v", err)
	}

	stats, err := store.GetEncouragementStats()
	if err != nil {
		t.Fatalf("GetEncouragementStats() returned unexpected error: %v", err)
	}
	if stats.Total != len(all) {
		t.Errorf("catalog size = %d after clear, want %d", stats.Total, len(all))
	}
	if stats.Seen != 0 {
		t.Errorf("Seen = %d after full clear, want 0", stats.Seen)
	}
}
