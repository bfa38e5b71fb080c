package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/haven-app/haven/internal/backup"
	"github.com/haven-app/haven/internal/cli"
	apperrors "github.com/haven-app/haven/internal/errors"
	"github.com/haven-app/haven/internal/cli/backups"
	"github.com/haven-app/haven/internal/cli/system"
	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/kvstore"
	"github.com/haven-app/haven/internal/logger"
	"github.com/haven-app/haven/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/haven/haven.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize haven storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Backup  struct {
		Now     backups.BackupNowCmd     `cmd:"" help:"Write a snapshot right now." default:"1"`
		Info    backups.BackupInfoCmd    `cmd:"" help:"Show the last snapshot."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Replay the last snapshot into the store."`
	} `cmd:"" help:"Manage the backup snapshot."`

	Profile   cli.ProfileCmd   `cmd:"" help:"Manage your profile and onboarding state."`
	Support   cli.SupportCmd   `cmd:"" help:"Manage your emergency contact."`
	Sobriety  cli.SobrietyCmd  `cmd:"" help:"Track sobriety."`
	Reasons   cli.ReasonsCmd   `cmd:"" help:"Manage your reasons for staying on track."`
	Journal   cli.JournalCmd   `cmd:"" help:"Write and browse journal entries."`
	Intention cli.IntentionCmd `cmd:"" help:"Set and browse daily intentions."`
	Checkin   cli.CheckinCmd   `cmd:"" help:"Daily check-ins."`
	SOS       cli.SOSCmd       `cmd:"" name:"sos" help:"Panic-relief screen activations."`
	Encourage cli.EncourageCmd `cmd:"" help:"Encouragement messages."`
	Export    cli.ExportCmd    `cmd:"" help:"Export all data as JSON."`
	Reset     cli.ResetCmd     `cmd:"" help:"Delete data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Private sobriety and wellness companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(configDir, CLI.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	kv := kvstore.New(filepath.Join(configDir, constants.SettingsFileName))
	store := sqlite.NewStore(CLI.Config)
	serializer := backup.NewSerializer(store, kv)

	// The store restores from the snapshot on first open and mirrors every
	// user-content write back into it.
	store.SetRestoreFunc(serializer.RestoreIfNeeded)
	store.SetAfterWriteHook(serializer.BackupAsync)

	ensureInstallID(kv)

	appCtx := &cli.Context{
		Store:      store,
		KV:         kv,
		Serializer: serializer,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close database", "error", closeErr)
	}
	if err != nil {
		apperrors.Fatal(err)
	}
}

// ensureInstallID assigns a stable anonymous id on first launch.
func ensureInstallID(kv *kvstore.Store) {
	_, err := kv.GetString(constants.SettingInstallID)
	if err == nil {
		return
	}
	if !errors.Is(err, kvstore.ErrKeyNotFound) {
		logger.Warn("Failed to read install id", "error", err)
		return
	}
	if err := kv.SetString(constants.SettingInstallID, uuid.NewString()); err != nil {
		logger.Warn("Failed to persist install id", "error", err)
	}
}
