package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Trips(ctx context.Context) error
	ShowTrip(ctx context.Context) error
	AddTrip(ctx context.Context) error
	AddEntry(ctx context.Context) error
	Groups(ctx context.Context) error
	AddGroup(ctx context.Context) error
	EditGroup(ctx context.Context) error
	DeleteGroup(ctx context.Context) error
	Notices(ctx context.Context) error
	Dismiss(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the trip diary CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - profile        — show the profile
//	  - editprofile    — edit profile fields
//	  - passwd         — change the password
//	  - delaccount     — delete the account
//	  - trips | t      — list trips
//	  - trip           — show one trip with its diary
//	  - addtrip        — create a trip
//	  - addentry       — append a diary entry
//	  - groups | g     — list local groups
//	  - addgroup       — create a group
//	  - editgroup      — rename/retag/change members
//	  - delgroup       — delete a group
//	  - notices | n    — show the notification feed
//	  - dismiss        — dismiss a notification
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("diary> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, editprofile, passwd, delaccount, (t)rips, trip, addtrip, addentry, (g)roups, addgroup, editgroup, delgroup, (n)otices, dismiss, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "delaccount":
			_ = a.DeleteAccount(ctx)

		case "t", "trips":
			_ = a.Trips(ctx)

		case "trip":
			_ = a.ShowTrip(ctx)

		case "addtrip":
			_ = a.AddTrip(ctx)

		case "addentry":
			_ = a.AddEntry(ctx)

		case "g", "groups":
			_ = a.Groups(ctx)

		case "addgroup":
			_ = a.AddGroup(ctx)

		case "editgroup":
			_ = a.EditGroup(ctx)

		case "delgroup":
			_ = a.DeleteGroup(ctx)

		case "n", "notices":
			_ = a.Notices(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
