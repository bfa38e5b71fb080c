package cli

import (
	"fmt"

	"github.com/haven-app/haven/internal/logger"
)

type ResetCmd struct {
	Data ResetDataCmd `cmd:"" help:"Delete your content but keep the encouragement catalog."`
	All  ResetAllCmd  `cmd:"" help:"Delete everything and restore the catalog to unseen."`
	DB   ResetDBCmd   `cmd:"" name:"db" help:"Recreate the database file from scratch."`
}

type ResetDataCmd struct{}

func (c *ResetDataCmd) Run(ctx *Context) error {
	ok, err := Confirm("Delete your data?", "Journals, intentions, check-ins, and profile will be removed. The encouragement catalog stays.")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing was deleted.")
		return nil
	}

	if err := ctx.Store.ClearUserData(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	// Drop the snapshot too, or the next launch would restore everything.
	if err := ctx.Serializer.DeleteSnapshot(); err != nil {
		logger.Warn("Failed to delete backup snapshot", "error", err)
	}

	fmt.Println("Your data has been deleted.")
	return nil
}

type ResetAllCmd struct{}

func (c *ResetAllCmd) Run(ctx *Context) error {
	ok, err := Confirm("Delete everything?", "All local data will be removed and encouragements marked unseen.")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing was deleted.")
		return nil
	}

	if err := ctx.Store.ClearAllData(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	if err := ctx.Serializer.DeleteSnapshot(); err != nil {
		logger.Warn("Failed to delete backup snapshot", "error", err)
	}

	fmt.Println("All data has been deleted.")
	return nil
}

type ResetDBCmd struct{}

func (c *ResetDBCmd) Run(ctx *Context) error {
	ok, err := Confirm("Recreate the database?", "The database file is closed, reopened, and migrated from scratch. Your local backup snapshot, if any, is replayed.")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing was changed.")
		return nil
	}

	if err := ctx.Store.ResetDatabase(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Println("Database recreated.")
	return nil
}
