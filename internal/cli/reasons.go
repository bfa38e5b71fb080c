package cli

import "fmt"

type ReasonsCmd struct {
	Set  ReasonsSetCmd  `cmd:"" help:"Replace your list of reasons."`
	List ReasonsListCmd `cmd:"" help:"List your reasons." default:"1"`
}

type ReasonsSetCmd struct {
	Reasons []string `arg:"" help:"Reasons for staying on track."`
}

func (c *ReasonsSetCmd) Run(ctx *Context) error {
	saved, err := ctx.Store.ReplaceUserReasons(c.Reasons)
	if err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Saved %d reason(s).\n", len(saved))
	return nil
}

type ReasonsListCmd struct{}

func (c *ReasonsListCmd) Run(ctx *Context) error {
	reasons, err := ctx.Store.GetUserReasons()
	if err != nil {
		return err
	}

	if len(reasons) == 0 {
		fmt.Println("No reasons recorded yet.")
		return nil
	}

	for i, reason := range reasons {
		fmt.Printf("%d. %s\n", i+1, reason.Reason)
	}

	return nil
}
