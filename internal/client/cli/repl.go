package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Triage(ctx context.Context) error
	Plan(ctx context.Context, args []string) error
	Share(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Resources(ctx context.Context, args []string) error
	Contacts(ctx context.Context, args []string) error
	Journal(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  triage                                   answer the crisis check-in
  plan [show]                              print the safety plan
  plan add <section> [text]                add an item (people/professionals prompt for contact details)
  plan remove <section> <n>                remove the n-th item of a section
  plan settings                            set check-in interval and reminders
  share                                    print the share link of the plan
  export <plan|triage> <md|pdf|upload>     write or upload a document
  resources [country]                      list crisis lines
  contacts [add | remove <n>]              manage default trusted contacts
  journal [n | flush]                      show or re-mirror exported notes
  exit | quit                              leave the program`

const authHelpLoggedOut = "  register | login                         sign in to mirror your data"
const authHelpLoggedIn = "  logout                                   stop mirroring (local data is kept)"

// runREPL starts a simple read–eval–print loop for the GophSafe CLI.
//
// It reads a line from reader, parses the first token as the command and the
// rest as arguments, and dispatches to methods on a. The loop exits on EOF or
// when the user types "exit" or "quit". Errors returned by handlers are
// printed and the loop carries on.
//
// Every command works without signing in; a session only enables mirroring.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gophsafe %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
			if a.isLoggedIn() {
				printlnFn(authHelpLoggedIn)
			} else {
				printlnFn(authHelpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "triage", "checkin":
			cmdErr = a.Triage(ctx)

		case "plan":
			cmdErr = a.Plan(ctx, args)

		case "share":
			cmdErr = a.Share(ctx)

		case "export":
			cmdErr = a.Export(ctx, args)

		case "resources", "help-lines":
			cmdErr = a.Resources(ctx, args)

		case "contacts":
			cmdErr = a.Contacts(ctx, args)

		case "journal":
			cmdErr = a.Journal(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
