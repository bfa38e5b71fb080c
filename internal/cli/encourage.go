package cli

import "fmt"

type EncourageCmd struct {
	Next  EncourageNextCmd  `cmd:"" help:"Show a fresh encouragement." default:"1"`
	List  EncourageListCmd  `cmd:"" help:"List the whole catalog."`
	Reset EncourageResetCmd `cmd:"" help:"Mark every encouragement unseen again."`
	Stats EncourageStatsCmd `cmd:"" help:"Show how many encouragements remain."`
}

type EncourageNextCmd struct{}

func (c *EncourageNextCmd) Run(ctx *Context) error {
	enc, err := ctx.Store.GetRandomUnseenEncouragement()
	if err != nil {
		return err
	}

	if enc == nil {
		// Cycle automatically once the pool is exhausted.
		if err := ctx.Store.ResetAllEncouragements(); err != nil {
			return err
		}
		enc, err = ctx.Store.GetRandomUnseenEncouragement()
		if err != nil {
			return err
		}
		if enc == nil {
			fmt.Println("No encouragements available.")
			return nil
		}
	}

	if err := ctx.Store.MarkEncouragementSeen(enc.ID); err != nil {
		return err
	}

	fmt.Println(enc.Message)
	return nil
}

type EncourageListCmd struct{}

func (c *EncourageListCmd) Run(ctx *Context) error {
	all, err := ctx.Store.GetEncouragements()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No encouragements available.")
		return nil
	}

	for i, enc := range all {
		marker := " "
		if enc.Seen {
			marker = "*"
		}
		fmt.Printf("%s %d. %s\n", marker, i+1, enc.Message)
	}
	fmt.Println("(* = already shown)")

	return nil
}

type EncourageResetCmd struct{}

func (c *EncourageResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.ResetAllEncouragements(); err != nil {
		return err
	}

	fmt.Println("Encouragements reset.")
	return nil
}

type EncourageStatsCmd struct{}

func (c *EncourageStatsCmd) Run(ctx *Context) error {
	stats, err := ctx.Store.GetEncouragementStats()
	if err != nil {
		return err
	}

	fmt.Printf("Seen %d of %d (%d remaining)\n", stats.Seen, stats.Total, stats.Unseen)
	return nil
}
