package cli

import (
	"errors"
	"fmt"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/storage"
)

type CheckinCmd struct {
	Add   CheckinAddCmd   `cmd:"" help:"Record today's check-in."`
	Today CheckinTodayCmd `cmd:"" help:"Show today's check-in." default:"1"`
	List  CheckinListCmd  `cmd:"" help:"List past check-ins, newest first."`
}

type CheckinAddCmd struct {
	Goal     string `arg:"" help:"One goal for today."`
	Energy   string `enum:"low,medium,high" help:"Energy level." default:"medium"`
	Tone     string `enum:"sad,calm,happy" help:"Emotional tone." default:"calm"`
	Thankful string `help:"Something you're thankful for." default:""`
}

func (c *CheckinAddCmd) Run(ctx *Context) error {
	checkIn, err := ctx.Store.CreateDailyCheckIn(models.DailyCheckIn{
		Goal:     c.Goal,
		Energy:   constants.EnergyLevel(c.Energy),
		Tone:     constants.MoodTone(c.Tone),
		Thankful: c.Thankful,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyCheckedIn) {
			fmt.Println("You've already checked in today.")
			return nil
		}
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Checked in for %s\n", checkIn.Date)
	return nil
}

type CheckinTodayCmd struct{}

func (c *CheckinTodayCmd) Run(ctx *Context) error {
	checkIn, err := ctx.Store.GetTodayCheckIn()
	if err != nil {
		return err
	}

	if checkIn == nil {
		fmt.Println("No check-in for today yet.")
		return nil
	}

	printCheckIn(*checkIn)
	return nil
}

type CheckinListCmd struct{}

func (c *CheckinListCmd) Run(ctx *Context) error {
	checkIns, err := ctx.Store.GetDailyCheckIns()
	if err != nil {
		return err
	}

	if len(checkIns) == 0 {
		fmt.Println("No check-ins yet.")
		return nil
	}

	for _, checkIn := range checkIns {
		printCheckIn(checkIn)
	}

	return nil
}

func printCheckIn(checkIn models.DailyCheckIn) {
	fmt.Printf("%s  energy=%s tone=%s\n", checkIn.Date, checkIn.Energy, checkIn.Tone)
	fmt.Printf("  goal: %s\n", checkIn.Goal)
	if checkIn.Thankful != "" {
		fmt.Printf("  thankful: %s\n", checkIn.Thankful)
	}
}
