package kvstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	return New(path), path
}

func TestStringRoundtrip(t *testing.T) {
	kv, _ := newTestKV(t)

	if err := kv.SetString("display_name", "Avery"); err != nil {
		t.Fatalf("SetString() returned unexpected error: %v", err)
	}

	got, err := kv.GetString("display_name")
	if err != nil {
		t.Fatalf("GetString() returned unexpected error: %v", err)
	}
	if got != "Avery" {
		t.Errorf("GetString() = %q, want %q", got, "Avery")
	}
}

func TestMissingKey(t *testing.T) {
	kv, _ := newTestKV(t)

	if _, err := kv.GetString("never_set"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
	if _, err := kv.GetBool("never_set"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
	if _, err := kv.GetInt("never_set"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v, want ErrKeyNotFound", err)
	}
}

func TestBoolRoundtrip(t *testing.T) {
	kv, _ := newTestKV(t)

	if err := kv.SetBool("onboarding_complete", true); err != nil {
		t.Fatalf("SetBool() returned unexpected error: %v", err)
	}
	got, err := kv.GetBool("onboarding_complete")
	if err != nil {
		t.Fatalf("GetBool() returned unexpected error: %v", err)
	}
	if !got {
		t.Error("GetBool() = false, want true")
	}
}

func TestIntRoundtrip(t *testing.T) {
	kv, _ := newTestKV(t)

	if err := kv.SetInt("setup_step", 4); err != nil {
		t.Fatalf("SetInt() returned unexpected error: %v", err)
	}
	got, err := kv.GetInt("setup_step")
	if err != nil {
		t.Fatalf("GetInt() returned unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("GetInt() = %d, want 4", got)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	kv, path := newTestKV(t)

	if err := kv.SetString("display_name", "Avery"); err != nil {
		t.Fatalf("SetString() returned unexpected error: %v", err)
	}

	reopened := New(path)
	got, err := reopened.GetString("display_name")
	if err != nil {
		t.Fatalf("GetString() after reopen returned unexpected error: %v", err)
	}
	if got != "Avery" {
		t.Errorf("GetString() after reopen = %q, want %q", got, "Avery")
	}
}

func TestDelete(t *testing.T) {
	kv, _ := newTestKV(t)

	if err := kv.SetString("temp", "value"); err != nil {
		t.Fatalf("SetString() returned unexpected error: %v", err)
	}
	if err := kv.Delete("temp"); err != nil {
		t.Fatalf("Delete() returned unexpected error: %v", err)
	}
	if _, err := kv.GetString("temp"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v after delete, want ErrKeyNotFound", err)
	}

	// Deleting a missing key is fine.
	if err := kv.Delete("never_set"); err != nil {
		t.Errorf("Delete() of missing key = %v, want nil", err)
	}
}

func TestClearAll(t *testing.T) {
	kv, path := newTestKV(t)

	if err := kv.SetString("a", "1"); err != nil {
		t.Fatalf("SetString() returned unexpected error: %v", err)
	}
	if err := kv.SetString("b", "2"); err != nil {
		t.Fatalf("SetString() returned unexpected error: %v", err)
	}

	if err := kv.ClearAll(); err != nil {
		t.Fatalf("ClearAll() returned unexpected error: %v", err)
	}

	if _, err := kv.GetString("a"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v after ClearAll, want ErrKeyNotFound", err)
	}

	// The cleared state is persisted too.
	reopened := New(path)
	if _, err := reopened.GetString("b"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v after ClearAll and reopen, want ErrKeyNotFound", err)
	}
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	kv := New(path)
	if _, err := kv.GetString("anything"); err == nil {
		t.Error("expected an error reading a corrupt settings file")
	}
}
