package cli

import (
	"fmt"
	"time"

	"github.com/haven-app/haven/internal/constants"
	"github.com/haven-app/haven/internal/models"
	"github.com/haven-app/haven/internal/sobriety"
)

type SobrietyCmd struct {
	Set  SobrietySetCmd  `cmd:"" help:"Set sobriety tracking preferences."`
	Show SobrietyShowCmd `cmd:"" help:"Show sobriety status." default:"1"`
}

type SobrietySetCmd struct {
	Mode   string `enum:"sober,trying" help:"Tracking mode." default:"sober"`
	Years  int    `help:"Years sober." default:"0"`
	Months int    `help:"Months sober." default:"0"`
	Days   int    `help:"Days sober." default:"0"`
	Off    bool   `help:"Stop tracking sobriety."`
}

func (c *SobrietySetCmd) Run(ctx *Context) error {
	data := models.SobrietyData{
		TrackingSobriety: !c.Off,
		TrackingMode:     constants.TrackingMode(c.Mode),
	}

	if !c.Off {
		soberDate := sobriety.SoberDateFromOffset(c.Years, c.Months, c.Days, time.Now())
		data.SoberDate = &soberDate
	}

	saved, err := ctx.Store.SaveSobrietyData(data)
	if err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	if c.Off {
		fmt.Println("Sobriety tracking turned off.")
		return nil
	}

	fmt.Printf("Tracking as %q since %s\n", saved.TrackingMode, *saved.SoberDate)
	return nil
}

type SobrietyShowCmd struct{}

func (c *SobrietyShowCmd) Run(ctx *Context) error {
	data, err := ctx.Store.GetSobrietyData()
	if err != nil {
		return err
	}

	if data == nil || !data.TrackingSobriety {
		fmt.Println("Sobriety tracking is off.")
		return nil
	}

	fmt.Printf("Mode: %s\n", data.TrackingMode)
	if data.SoberDate != nil {
		days, err := sobriety.DaysSober(*data.SoberDate, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Sober since %s — day %d\n", *data.SoberDate, days)
	}

	return nil
}
