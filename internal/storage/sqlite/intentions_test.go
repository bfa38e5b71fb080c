package sqlite

import (
	"errors"
	"testing"

	"github.com/haven-app/haven/internal/storage"
)

func TestGetCurrentIntention(t *testing.T) {
	t.Run("nil when none exist", func(t *testing.T) {
		store := setupTestStore(t)

		intention, err := store.GetCurrentIntention()
		if err != nil {
			t.Fatalf("GetCurrentIntention() returned unexpected error: %v", err)
		}
		if intention != nil {
			t.Errorf("got %+v, want nil", intention)
		}
	})

	t.Run("returns the most recent by logical time", func(t *testing.T) {
		store := setupTestStore(t)

		if _, err := store.CreateIntention("older", "2026-01-01T09:00:00Z"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := store.CreateIntention("newest", "2026-02-01T09:00:00Z"); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if _, err := store.CreateIntention("middle", "2026-01-15T09:00:00Z"); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		intention, err := store.GetCurrentIntention()
		if err != nil {
			t.Fatalf("GetCurrentIntention() returned unexpected error: %v", err)
		}
		if intention == nil || intention.Content != "newest" {
			t.Errorf("GetCurrentIntention() = %+v, want newest", intention)
		}
	})
}

func TestUpdateIntention(t *testing.T) {
	store := setupTestStore(t)

	intention, err := store.CreateIntention("be present", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.UpdateIntention(intention.ID, "be patient"); err != nil {
		t.Fatalf("UpdateIntention() returned unexpected error: %v", err)
	}

	current, err := store.GetCurrentIntention()
	if err != nil {
		t.Fatalf("GetCurrentIntention() returned unexpected error: %v", err)
	}
	if current.Content != "be patient" {
		t.Errorf("Content = %q, want %q", current.Content, "be patient")
	}

	if err := store.UpdateIntention(999, "nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteIntention(t *testing.T) {
	store := setupTestStore(t)

	intention, err := store.CreateIntention("short lived", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.DeleteIntention(intention.ID); err != nil {
		t.Fatalf("DeleteIntention() returned unexpected error: %v", err)
	}

	intentions, err := store.GetIntentions()
	if err != nil {
		t.Fatalf("GetIntentions() returned unexpected error: %v", err)
	}
	if len(intentions) != 0 {
		t.Errorf("got %d intentions after delete, want 0", len(intentions))
	}
}
