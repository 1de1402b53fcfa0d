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
	Trips(ctx context.Context) error
	ShowTrip(ctx context.Context, args []string) error
	AddTrip(ctx context.Context) error
	DeleteTrip(ctx context.Context, args []string) error
	Activities(ctx context.Context) error
	ShowActivity(ctx context.Context, args []string) error
	AddActivity(ctx context.Context) error
	EditActivity(ctx context.Context, args []string) error
	DeleteActivity(ctx context.Context, args []string) error
	Health(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the TripDeck CLI.
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
//	  - health         — probe the backend
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - trips          — list trips
//	  - trip <id>      — show one trip
//	  - addtrip        — create a trip
//	  - deltrip <id>   — delete a trip (with confirmation)
//	  - activities     — browse activities (search / filter / paginate)
//	  - show <id>      — show one activity
//	  - addactivity    — create an activity
//	  - edit <id>      — edit an activity
//	  - delete <id>    — delete an activity (with confirmation)
//	  - health         — probe the backend
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("td> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: trips, trip <id>, addtrip, deltrip <id>, (a)ctivities, show <id>, addactivity, edit <id>, delete <id>, health, logout, exit")
			} else {
				printlnFn("Available commands: register, login, health, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "trips":
			_ = a.Trips(ctx)

		case "trip":
			_ = a.ShowTrip(ctx, args)

		case "addtrip":
			_ = a.AddTrip(ctx)

		case "deltrip":
			_ = a.DeleteTrip(ctx, args)

		case "a", "activities":
			_ = a.Activities(ctx)

		case "show":
			_ = a.ShowActivity(ctx, args)

		case "addactivity":
			_ = a.AddActivity(ctx)

		case "edit":
			_ = a.EditActivity(ctx, args)

		case "delete":
			_ = a.DeleteActivity(ctx, args)

		case "health":
			_ = a.Health(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
