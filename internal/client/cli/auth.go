package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mvberkel/tripdiary/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates the account.
// The account is saved locally even when the server cannot be reached;
// the user is told which of the two happened.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	status, err := a.authService.Register(ctx, email, password)
	if err != nil {
		fmt.Println("Registration failed:", err.Error())
		return err
	}

	a.email = email
	switch status {
	case services.RegisterSynced:
		a.setMode(ModeOnline)
		fmt.Println("Account created and synced with the server.")
	case services.RegisterLocalOnly:
		a.setMode(ModeOffline)
		fmt.Println("Server unreachable; account saved locally and will sync on the next online login.")
	}
	return nil
}

// Login prompts for credentials and authenticates, online when possible,
// against the local shadow when the server is unreachable. A server
// rejection ends the attempt; there is no offline second chance then.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	status, _, err := a.authService.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.email = email
	switch status {
	case services.LoginServerConfirmed:
		a.setMode(ModeOnline)
		fmt.Println("Logged in.")
	case services.LoginOffline:
		a.setMode(ModeOffline)
		fmt.Println("Server unreachable; logged in with locally saved credentials.")
	}
	return nil
}

// Logout forgets the locally cached account.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.email = ""
	fmt.Println("Logged out.")
	return nil
}
