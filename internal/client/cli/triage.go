package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsafe/internal/client/models"
	"github.com/dmitrijs2005/gophsafe/internal/client/triage"
)

var getYesNo = GetYesNo

// Triage asks the five check-in questions, stores the result and prints the
// level with its next steps. For amber and red the local emergency number
// and crisis lines are shown straight away.
func (a *App) Triage(ctx context.Context) error {
	raw := make(map[string]bool, len(triage.Questions))
	for _, q := range triage.Questions {
		yes, err := getYesNo(a.reader, q.Prompt, a.out)
		if err != nil {
			return err
		}
		raw[q.Key] = yes
	}

	answers, err := triage.ParseAnswers(raw)
	if err != nil {
		return err
	}

	result, err := a.triageService.Complete(ctx, answers)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nResult: %s\n%s\n", strings.ToUpper(string(result.Level)), triage.Guidance(result.Level))

	if result.Level.Rank() > models.LevelGreen.Rank() {
		fmt.Fprintln(a.out)
		a.printResources(a.country)
	}
	return nil
}
