package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/export"
	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/resources"
)

// Resources lists the crisis lines for the detected country, or for the
// country given as the first argument.
func (a *App) Resources(ctx context.Context, args []string) error {
	country := a.country
	if len(args) > 0 {
		country = resources.ParseCountry(args[0])
	}
	a.printResources(country)
	return nil
}

func (a *App) printResources(country resources.Country) {
	fmt.Fprintf(a.out, "Crisis resources (%s):\n", country)
	for _, r := range a.directory.Get(country) {
		line := fmt.Sprintf("  - %s: %s", r.Label, r.Href)
		if r.Hours != "" {
			line += " (" + r.Hours + ")"
		}
		fmt.Fprintln(a.out, line)
		if r.Note != "" {
			fmt.Fprintln(a.out, "    "+r.Note)
		}
	}
}

// Contacts shows, adds or removes default trusted contacts.
//
//	contacts
//	contacts add
//	contacts remove <n>
func (a *App) Contacts(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		list, err := a.contactsService.List(ctx)
		if err != nil {
			return err
		}
		a.printContacts(list)
		return nil

	case "add":
		c, err := a.readContact()
		if err != nil {
			return err
		}
		list, err := a.contactsService.Add(ctx, c)
		if err != nil {
			return err
		}
		a.printContacts(list)
		return nil

	case "remove", "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: contacts remove <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid contact number %q", args[1])
		}
		list, err := a.contactsService.Remove(ctx, n-1)
		if err != nil {
			return err
		}
		a.printContacts(list)
		return nil
	}

	return fmt.Errorf("usage: contacts [add | remove <n>]")
}

func (a *App) printContacts(list []models.SafetyContact) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No trusted contacts yet. Use 'contacts add'.")
		return
	}
	for i, c := range list {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, export.FormatContact(c))
	}
}

func (a *App) readContact() (models.SafetyContact, error) {
	var c models.SafetyContact
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &c.Name},
		{"Phone (optional)", &c.Phone},
		{"SMS number (optional)", &c.SMS},
		{"Email (optional)", &c.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return c, err
		}
		*f.dst = strings.TrimSpace(v)
	}
	return c, nil
}
