package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/haven-app/haven/internal/backup"
	"github.com/haven-app/haven/internal/kvstore"
	"github.com/haven-app/haven/internal/storage"
)

// Context carries the application-lifetime store handles into every command.
// The wiring (restore hook, after-write backup hook) is done once in main.
type Context struct {
	Store      storage.Provider
	KV         *kvstore.Store
	Serializer *backup.Serializer
}

// Confirm asks the user to approve a destructive operation before it reaches
// the record store.
func Confirm(title, description string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation aborted: %w", err)
	}
	return confirmed, nil
}
