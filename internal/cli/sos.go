package cli

import (
	"fmt"
	"time"
)

type SOSCmd struct {
	Log  SOSLogCmd  `cmd:"" help:"Record a panic-relief screen activation." default:"1"`
	List SOSListCmd `cmd:"" help:"List recent activations, newest first."`
}

type SOSLogCmd struct{}

func (c *SOSLogCmd) Run(ctx *Context) error {
	// Degrades to a no-op on storage failure: the calming-breath flow is
	// never blocked by audit logging.
	entry := ctx.Store.LogSOSActivation("")
	if entry.ID == 0 {
		fmt.Println("SOS noted.")
		return nil
	}

	fmt.Printf("SOS activation logged (#%d)\n", entry.ID)
	return nil
}

type SOSListCmd struct{}

func (c *SOSListCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetSOSLogs()
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Println("No SOS activations recorded.")
		return nil
	}

	for _, entry := range logs {
		when := entry.Timestamp
		if ts, err := time.Parse(time.RFC3339, entry.Timestamp); err == nil {
			when = ts.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("#%-4d %s\n", entry.ID, when)
	}

	return nil
}
