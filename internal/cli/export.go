package cli

import (
	"fmt"
	"os"

	"github.com/haven-app/haven/internal/export"
)

type ExportCmd struct {
	Out string `help:"Write the export to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	doc, err := export.Build(ctx.Store)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	payload, err := export.Marshal(doc)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Out == "" {
		fmt.Println(string(payload))
		return nil
	}

	if err := os.WriteFile(c.Out, payload, 0o600); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Exported to %s\n", c.Out)
	return nil
}
