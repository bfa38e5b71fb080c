package backups

import (
	"errors"
	"fmt"
	"time"

	"github.com/haven-app/haven/internal/cli"
	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/kvstore"
)

type BackupNowCmd struct{}

func (c *BackupNowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Serializer.Backup(); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Println("✓ Snapshot written.")
	return nil
}

type BackupInfoCmd struct{}

func (c *BackupInfoCmd) Run(ctx *cli.Context) error {
	snapshot, err := ctx.Serializer.LastSnapshot()
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			fmt.Println("No snapshot found. One is written automatically after your next save,")
			fmt.Println("or run 'haven backup now'.")
			return nil
		}
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	fmt.Printf("Format version: %s\n", snapshot.Version)
	fmt.Printf("Taken: %s", snapshot.Timestamp)
	if taken, parseErr := time.Parse(time.RFC3339, snapshot.Timestamp); parseErr == nil {
		age := time.Since(taken)
		fmt.Printf(" (%s ago)", age.Round(time.Minute))
		if age > constants.BackupStaleDays*24*time.Hour {
			fmt.Printf("  ⚠ stale")
		}
	}
	fmt.Println()

	fmt.Printf("Journal entries: %d\n", len(snapshot.JournalEntries))
	fmt.Printf("Intentions: %d\n", len(snapshot.Intentions))
	fmt.Printf("Check-ins: %d\n", len(snapshot.DailyCheckIns))
	fmt.Printf("SOS activations: %d\n", len(snapshot.SOSLogs))
	fmt.Printf("Reasons: %d\n", len(snapshot.UserReasons))

	return nil
}

type BackupRestoreCmd struct{}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	snapshot, err := ctx.Serializer.LastSnapshot()
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			fmt.Println("No snapshot to restore from.")
			return nil
		}
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	ok, err := cli.Confirm("Restore from snapshot?",
		fmt.Sprintf("Records from the snapshot taken %s will be written over rows with the same ids. Newer local rows keep their place.", snapshot.Timestamp))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Restore cancelled.")
		return nil
	}

	if err := ctx.Serializer.Replay(snapshot); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Snapshot restored.")
	return nil
}
