package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/haven-app/haven/data"
	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/migration"
	"github.com/haven-app/haven/migrations"
)

// Store is the on-device structured store. It owns one lazily opened
// connection for the process lifetime; ResetDatabase is the only operation
// that reopens it wholesale.
type Store struct {
	path string

	mu       sync.Mutex
	db       *sql.DB
	restored bool

	// backups tracks in-flight after-write goroutines so Close can drain
	// them; a short-lived CLI process would otherwise exit mid-snapshot.
	backups sync.WaitGroup

	// restoreFn replays the last snapshot once per open, after schema and
	// seed. Wired by the app context, never by this package.
	restoreFn func() error

	// afterWrite is invoked asynchronously after each successful
	// user-content mutation. Best effort: failures must never surface to the
	// originating write.
	afterWrite func()
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// SetRestoreFunc wires the restore coordinator. Must be called before the
// first store operation.
func (s *Store) SetRestoreFunc(fn func() error) {
	s.restoreFn = fn
}

// SetAfterWriteHook wires the backup trigger. Must be called before the
// first store operation.
func (s *Store) SetAfterWriteHook(fn func()) {
	s.afterWrite = fn
}

// Init opens the database, runs migrations, seeds the encouragement catalog,
// and replays the last snapshot if the store looks freshly created. Safe to
// call every launch; callers that forget are covered by lazy init.
func (s *Store) Init() error {
	return s.ensureOpen()
}

// ensureOpen lazily initializes the store exactly once per open. A failed
// attempt leaves the store closed so the next call retries.
func (s *Store) ensureOpen() error {
	s.mu.Lock()
	if s.db != nil {
		s.mu.Unlock()
		return nil
	}

	err := s.openLocked()
	runRestore := err == nil && s.restoreFn != nil && !s.restored
	if runRestore {
		s.restored = true
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}

	if runRestore {
		if restoreErr := s.restoreFn(); restoreErr != nil {
			// A corrupt or missing snapshot never prevents reaching a usable
			// empty store.
			logger.Warn("Snapshot restore failed", "error", restoreErr)
		}
	}

	return nil
}

// openLocked opens the database, migrates, and seeds. Callers must hold s.mu.
func (s *Store) openLocked() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := s.runMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := s.seedEncouragements(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to seed encouragements: %w", err)
	}

	s.db = db
	return nil
}

// Close waits for any in-flight backup before releasing the connection.
func (s *Store) Close() error {
	s.backups.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// ResetDatabase closes and fully reopens the underlying store, re-running
// schema, seed, and restore.
func (s *Store) ResetDatabase() error {
	s.backups.Wait()

	s.mu.Lock()
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("failed to close database: %w", err)
		}
		s.db = nil
	}
	s.restored = false
	s.mu.Unlock()

	return s.ensureOpen()
}

func (s *Store) runMigrations(db *sql.DB) error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS)
	_, err = runner.ApplyMigrations()
	return err
}

// ValidateSchemaVersion reports whether the store is at the latest schema
// version. Used by diagnostics, not by startup.
func (s *Store) ValidateSchemaVersion() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	return runner.ValidateVersion()
}

// seedEncouragements populates the catalog from the embedded message bank on
// first run. Rows are never added or removed after this.
func (s *Store) seedEncouragements(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM encouragements").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var seeds []struct {
		Message string `json:"message"`
		Seen    bool   `json:"seen"`
	}
	if err := json.Unmarshal(data.EncouragementsJSON, &seeds); err != nil {
		return fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO encouragements (message, seen, created_at, updated_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := nowString()
	for _, seed := range seeds {
		if _, err := stmt.Exec(seed.Message, seed.Seen, now, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// triggerBackup fires the best-effort backup hook after a successful
// user-content mutation.
func (s *Store) triggerBackup() {
	if s.afterWrite == nil {
		return
	}

	s.backups.Add(1)
	go func() {
		defer s.backups.Done()
		s.afterWrite()
	}()
}

// nowString returns the current time as an RFC3339 UTC timestamp.
func nowString() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, opening the store if
// needed. Used by diagnostics and tests.
func (s *Store) GetDB() (*sql.DB, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	return s.db, nil
}
