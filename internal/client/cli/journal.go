package cli

import (
	"context"
	"fmt"
	"strconv"
)

const defaultJournalLimit = 10

// Journal lists recent journal entries, or with "flush" retries mirroring
// of entries recorded while offline.
func (a *App) Journal(ctx context.Context, args []string) error {
	limit := defaultJournalLimit
	if len(args) > 0 {
		if args[0] == "flush" {
			n, err := a.journalService.Flush(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d entr(ies) mirrored.\n", n)
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("usage: journal [n | flush]")
		}
		limit = n
	}

	entries, err := a.journalService.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Journal is empty. Exports are recorded here.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%s  %-12s %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Source, e.Title)
	}
	return nil
}
