package cli

import (
	"fmt"
	"time"
)

type IntentionCmd struct {
	Add     IntentionAddCmd     `cmd:"" help:"Set a new intention."`
	Current IntentionCurrentCmd `cmd:"" help:"Show the current intention." default:"1"`
	List    IntentionListCmd    `cmd:"" help:"List all intentions, newest first."`
	Edit    IntentionEditCmd    `cmd:"" help:"Edit an intention."`
	Delete  IntentionDeleteCmd  `cmd:"" help:"Delete an intention."`
}

type IntentionAddCmd struct {
	Content string `arg:"" help:"Intention text."`
}

func (c *IntentionAddCmd) Run(ctx *Context) error {
	intention, err := ctx.Store.CreateIntention(c.Content, "")
	if err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Set intention #%d\n", intention.ID)
	return nil
}

type IntentionCurrentCmd struct{}

func (c *IntentionCurrentCmd) Run(ctx *Context) error {
	intention, err := ctx.Store.GetCurrentIntention()
	if err != nil {
		return err
	}

	if intention == nil {
		fmt.Println("No intention set.")
		return nil
	}

	fmt.Println(intention.Content)
	return nil
}

type IntentionListCmd struct{}

func (c *IntentionListCmd) Run(ctx *Context) error {
	intentions, err := ctx.Store.GetIntentions()
	if err != nil {
		return err
	}

	if len(intentions) == 0 {
		fmt.Println("No intentions yet.")
		return nil
	}

	for _, intention := range intentions {
		when := intention.Timestamp
		if ts, err := time.Parse(time.RFC3339, intention.Timestamp); err == nil {
			when = ts.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("#%-4d %s  %s\n", intention.ID, when, intention.Content)
	}

	return nil
}

type IntentionEditCmd struct {
	ID      int64  `arg:"" help:"Intention id."`
	Content string `arg:"" help:"New intention text."`
}

func (c *IntentionEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.UpdateIntention(c.ID, c.Content); err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Updated intention #%d\n", c.ID)
	return nil
}

type IntentionDeleteCmd struct {
	ID int64 `arg:"" help:"Intention id."`
}

func (c *IntentionDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteIntention(c.ID); err != nil {
		return fmt.Errorf("nothing was deleted: %w", err)
	}

	fmt.Printf("Deleted intention #%d\n", c.ID)
	return nil
}
