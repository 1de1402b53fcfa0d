package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tripdeck/internal/client/api"
	"tripdeck/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates against the
// backend. On success the session is already persisted by the AuthService;
// the app only records the user name and switches to online mode.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server unavailable, try again later")
			a.setMode(ModeOffline)
			return err
		}
		printlnFn(fmt.Sprintf("Login unsuccessful: %s", err.Error()))
		return err
	}

	a.userName = user.Username
	a.setMode(ModeOnline)
	printlnFn("Login successful")
	return nil
}

// Register prompts for the registration fields and creates an account. When
// the backend issues a token with the reply, the user is logged in right away.
func (a *App) Register(ctx context.Context) error {
	form := services.RegisterForm{}
	var err error

	if form.Username, err = getSimpleText(a.reader, "Enter username", os.Stdout); err != nil {
		return err
	}
	if form.FullName, err = getSimpleText(a.reader, "Enter full name", os.Stdout); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if form.DOB, err = getSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if form.Password, err = getPassword(os.Stdout); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, form)
	if err != nil {
		printlnFn(fmt.Sprintf("Registration unsuccessful: %s", err.Error()))
		return err
	}

	printlnFn("Success!")

	sess, err := a.auth.Current(ctx)
	if err == nil && sess != nil {
		a.userName = user.Username
		a.setMode(ModeOnline)
	}
	return nil
}

// Logout wipes the persisted session and clears the in-memory user name.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
