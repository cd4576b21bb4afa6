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
	List(ctx context.Context, term string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Export(ctx context.Context, path string, term string) error
}

const helpText = `Available commands:
  (l)ist [term]        list recipes, optionally filtered by title
  search <term>        same as list <term>
  show <id>            fetch a recipe from the server
  add                  add a recipe
  edit <id>            edit one of your recipes
  delete <id>          delete one of your recipes
  login                log in with your email
  logout               log out
  export <file> [term] write the list to .xlsx or .csv
  exit | quit          leave the program`

// runREPL starts a simple read–eval–print loop for the recipebook client.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on a. Unknown commands are reported back to the user. The loop
// exits on EOF, when ctx is done, or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, prompt bool) {
	for {
		if ctx.Err() != nil {
			return
		}
		if prompt {
			fmt.Printf("recipebook %s> ", statusFn())
		}

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx, rest)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				continue
			}
			_ = a.List(ctx, rest)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export <file.xlsx|file.csv> [term]")
				continue
			}
			_ = a.Export(ctx, args[0], strings.Join(args[1:], " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
