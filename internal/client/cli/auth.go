package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/client/client"
	"github.com/dmitrijs2005/gophsafe/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates an account on
// the mirror server. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username (email)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to start mirroring.")
	return nil
}

// Login authenticates against the mirror server and stores the session.
//
// An unreachable server is not fatal: the app keeps working on local data
// and the user is told that nothing will be mirrored until they sign in.
// After a successful login, journal entries recorded while signed out are
// mirrored.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username (email)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ctx, ModeOffline)
			fmt.Fprintln(a.out, "Server unavailable. Everything still works on this device; try 'login' again later to mirror.")
			return nil
		}
		a.logger.Warn(ctx, "login unsuccessful", "error", err)
		return err
	}

	a.setUser(sess.Username)
	a.setMode(ctx, ModeOnline)
	fmt.Fprintln(a.out, "Login successful")

	a.flushJournal(ctx)
	return nil
}

// Logout forgets the stored session. Local plan, triage and journal data
// stay on the device.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setUser("")
	fmt.Fprintln(a.out, "Logged out. Your data stays on this device.")
	return nil
}
