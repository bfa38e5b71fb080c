package cli

import (
	"fmt"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/models"
)

type ProfileCmd struct {
	Name ProfileNameCmd `cmd:"" help:"Set the display name."`
	Show ProfileShowCmd `cmd:"" help:"Show the current profile." default:"1"`
	Step ProfileStepCmd `cmd:"" help:"Set the onboarding wizard step."`
	Done ProfileDoneCmd `cmd:"" help:"Mark onboarding as complete."`
}

type ProfileNameCmd struct {
	Name string `arg:"" help:"Display name."`
}

func (c *ProfileNameCmd) Run(ctx *Context) error {
	user, err := ctx.Store.GetUser()
	if err != nil {
		return err
	}

	if user == nil {
		if _, err := ctx.Store.SaveUser(models.User{Name: c.Name}); err != nil {
			return fmt.Errorf("nothing was saved: %w", err)
		}
	} else if err := ctx.Store.UpdateUserName(c.Name); err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	// Mirror into the key-value area for fast display on startup screens.
	if err := ctx.KV.SetString(constants.SettingDisplayName, c.Name); err != nil {
		return err
	}

	fmt.Printf("Hello, %s\n", c.Name)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	user, err := ctx.Store.GetUser()
	if err != nil {
		return err
	}

	if user == nil {
		fmt.Println("No profile yet. Run 'haven profile name <name>' to get started.")
		return nil
	}

	fmt.Printf("Name: %s\n", user.Name)
	fmt.Printf("Onboarding complete: %v\n", user.HasCompletedOnboarding)
	if !user.HasCompletedOnboarding {
		fmt.Printf("Setup step: %d\n", user.SetupStep)
	}

	return nil
}

type ProfileStepCmd struct {
	Step int `arg:"" help:"Wizard step number."`
}

func (c *ProfileStepCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetSetupStep(c.Step); err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}
	if err := ctx.KV.SetInt(constants.SettingSetupStep, c.Step); err != nil {
		return err
	}

	fmt.Printf("Setup step: %d\n", c.Step)
	return nil
}

type ProfileDoneCmd struct{}

func (c *ProfileDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.SetOnboardingComplete(true); err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}
	if err := ctx.KV.SetBool(constants.SettingOnboardingComplete, true); err != nil {
		return err
	}

	fmt.Println("Onboarding complete. Welcome.")
	return nil
}
