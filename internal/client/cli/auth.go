package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/common"
)

var (
	promptLine     = PromptLine
	promptPassword = PromptPassword
)

// Register prompts for a username and password and registers the derived
// commitments. The server's acknowledgement is printed on success. The
// password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := promptLine(a.reader, "User name", a.out)
	if err != nil {
		return err
	}

	password, err := promptPassword(a.reader, "Password for "+userName, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.authService.Register(ctx, userName, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", describe(err))
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// Login prompts for credentials and proves knowledge of the password.
// On success the session id is printed and kept; a failed attempt leaves
// any previous session untouched.
func (a *App) Login(ctx context.Context) error {
	userName, err := promptLine(a.reader, "User name", a.out)
	if err != nil {
		return err
	}

	password, err := promptPassword(a.reader, "Password for "+userName, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", describe(err))
		return err
	}

	a.userName = userName
	a.sessionID = session

	fmt.Fprintf(a.out, "Login successful. Session id: %s\n", session)
	return nil
}

// Logout forgets the session locally and stops the client from sending it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.sessionID = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s, session id: %s\n", a.userName, a.sessionID)
	return nil
}

// describe turns client errors into short user-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, client.ErrChallengeNotFound):
		return "challenge expired or already used"
	case errors.Is(err, client.ErrUnauthorized):
		return "wrong password"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	default:
		return err.Error()
	}
}
