package cli

import (
	"fmt"
	"time"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a new journal entry."`
	List   JournalListCmd   `cmd:"" help:"List journal entries, newest first."`
	Edit   JournalEditCmd   `cmd:"" help:"Edit an entry's content."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete an entry."`
}

type JournalAddCmd struct {
	Content string `arg:"" help:"Entry text."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	entry, err := ctx.Store.CreateJournalEntry(c.Content, "")
	if err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Saved journal entry #%d\n", entry.ID)
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetJournalEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	for _, entry := range entries {
		when := entry.Timestamp
		if ts, err := time.Parse(time.RFC3339, entry.Timestamp); err == nil {
			when = ts.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("#%-4d %s  %s\n", entry.ID, when, entry.Content)
	}

	return nil
}

type JournalEditCmd struct {
	ID      int64  `arg:"" help:"Entry id."`
	Content string `arg:"" help:"New entry text."`
}

func (c *JournalEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.UpdateJournalEntry(c.ID, c.Content); err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Updated journal entry #%d\n", c.ID)
	return nil
}

type JournalDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteJournalEntry(c.ID); err != nil {
		return fmt.Errorf("nothing was deleted: %w", err)
	}

	fmt.Printf("Deleted journal entry #%d\n", c.ID)
	return nil
}
