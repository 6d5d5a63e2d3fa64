package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/export"
	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/services"
)

var getPositiveInt = GetPositiveInt

// Plan dispatches the plan sub-commands: show, add, remove and settings.
func (a *App) Plan(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		return a.showPlan(ctx)
	case "add":
		return a.planAdd(ctx, args[1:])
	case "remove", "rm":
		return a.planRemove(ctx, args[1:])
	case "settings":
		return a.planSettings(ctx)
	case "sections":
		for _, s := range models.Sections {
			fmt.Fprintf(a.out, "  %-14s %s\n", s, s.Title())
		}
		return nil
	}
	return fmt.Errorf("usage: plan [show | add <section> [text] | remove <section> <n> | settings | sections]")
}

func (a *App) showPlan(ctx context.Context) error {
	plan, err := a.planService.Load(ctx)
	if err != nil {
		return err
	}
	if plan == nil {
		fmt.Fprintln(a.out, "No safety plan yet. Start with 'plan add signals <text>' (see 'plan sections').")
		return nil
	}
	fmt.Fprint(a.out, export.RenderPlanMarkdown(plan))
	return nil
}

func (a *App) planAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: plan add <section> [text]")
	}
	section, err := models.ParseSection(args[0])
	if err != nil {
		return err
	}

	var plan *models.SafetyPlan
	if section.IsContactList() && len(args) == 1 {
		c, err := a.readContact()
		if err != nil {
			return err
		}
		plan, err = a.planService.AddContact(ctx, section, c)
		if err != nil {
			return err
		}
	} else {
		text := strings.Join(args[1:], " ")
		if text == "" {
			text, err = getSimpleText(a.reader, section.Title(), a.out)
			if err != nil {
				return err
			}
		}
		plan, err = a.planService.AddItem(ctx, section, text)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "Saved. %s now has %d item(s).\n", section.Title(), plan.Len(section))
	return nil
}

func (a *App) planRemove(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: plan remove <section> <n>")
	}
	section, err := models.ParseSection(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid item number %q", args[1])
	}

	plan, err := a.planService.RemoveItem(ctx, section, n-1)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed. %s now has %d item(s).\n", section.Title(), plan.Len(section))
	return nil
}

func (a *App) planSettings(ctx context.Context) error {
	def := models.DefaultCheckinEveryMin
	if plan, err := a.planService.Load(ctx); err == nil && plan != nil {
		def = plan.CheckinEveryMin
	}

	every, err := getPositiveInt(a.reader, "Check-in every how many minutes?", def, a.out)
	if err != nil {
		return err
	}
	reminders, err := getYesNo(a.reader, "Turn check-in reminders on?", a.out)
	if err != nil {
		return err
	}

	plan, err := a.planService.Save(ctx, models.PlanPatch{CheckinEveryMin: &every, RemindersOn: &reminders})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved. Check-in every %d minutes, reminders %s.\n", plan.CheckinEveryMin, onOff(plan.RemindersOn))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Share prints the public link of the plan. The link only resolves on the
// server once the plan has been mirrored.
func (a *App) Share(ctx context.Context) error {
	plan, err := a.planService.Load(ctx)
	if err != nil {
		return err
	}
	if plan == nil {
		fmt.Fprintln(a.out, "No safety plan yet, nothing to share.")
		return nil
	}
	fmt.Fprintln(a.out, services.ShareLink(plan, a.config.ShareOrigin))
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Note: log in so the plan is mirrored; until then the link will not open for others.")
	}
	return nil
}
