package cli

import "fmt"

type SupportCmd struct {
	Set  SupportSetCmd  `cmd:"" help:"Set your emergency contact."`
	Show SupportShowCmd `cmd:"" help:"Show your emergency contact." default:"1"`
}

type SupportSetCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Contact phone number."`
}

func (c *SupportSetCmd) Run(ctx *Context) error {
	person, err := ctx.Store.SaveSupportPerson(c.Name, c.Phone)
	if err != nil {
		return fmt.Errorf("nothing was saved: %w", err)
	}

	fmt.Printf("Support person saved: %s (%s)\n", person.Name, person.Phone)
	return nil
}

type SupportShowCmd struct{}

func (c *SupportShowCmd) Run(ctx *Context) error {
	person, err := ctx.Store.GetSupportPerson()
	if err != nil {
		return err
	}

	if person == nil {
		fmt.Println("No support person set.")
		return nil
	}

	fmt.Printf("%s  %s\n", person.Name, person.Phone)
	return nil
}
