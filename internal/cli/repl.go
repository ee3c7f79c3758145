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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	onDetailView() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListCollections(ctx context.Context) error
	NewCollection(ctx context.Context) error
	EditCollection(ctx context.Context, id string) error
	DeleteCollection(ctx context.Context, id string) error
	OpenCollection(ctx context.Context, id string) error
	Search(ctx context.Context, query string) error
	Back(ctx context.Context) error
	ListItems(ctx context.Context) error
	AddItem(ctx context.Context) error
	EditItem(ctx context.Context, id string) error
	DeleteItem(ctx context.Context, id string) error
	SearchItems(ctx context.Context, query string) error
}

// runREPL starts a read–eval–print loop over the controller commands.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help, register, login, exit | quit
//
//	Logged in, on the list view:
//	  - list, new, edit <id>, rm <id>, open <id>, search [query], logout
//
//	Logged in, on a collection detail view:
//	  - items, add, edititem <id>, rmitem <id>, searchitems [query], back
//
// Errors returned by command handlers are ignored here; handlers print their
// own notices. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("curio> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: register, login, exit")
			case a.onDetailView():
				printlnFn("Available commands: items, add, edititem <id>, rmitem <id>, searchitems [query], back, logout, exit")
			default:
				printlnFn("Available commands: (l)ist, new, edit <id>, rm <id>, open <id>, search [query], logout, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.ListCollections(ctx)

		case "new":
			_ = a.NewCollection(ctx)

		case "edit":
			_ = a.EditCollection(ctx, arg)

		case "rm":
			_ = a.DeleteCollection(ctx, arg)

		case "open":
			_ = a.OpenCollection(ctx, arg)

		case "search":
			_ = a.Search(ctx, arg)

		case "back":
			_ = a.Back(ctx)

		case "items":
			_ = a.ListItems(ctx)

		case "add":
			_ = a.AddItem(ctx)

		case "edititem":
			_ = a.EditItem(ctx, arg)

		case "rmitem":
			_ = a.DeleteItem(ctx, arg)

		case "searchitems":
			_ = a.SearchItems(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
