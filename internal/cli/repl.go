package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	Compose(ctx context.Context) error
	ShowSent(ctx context.Context) error
	Total(ctx context.Context) error
	Populate(ctx context.Context) error
	Senders(ctx context.Context) error
	Longest(ctx context.Context) error
	Find(ctx context.Context, id string) error
	Recipient(ctx context.Context, recipient string) error
	Delete(ctx context.Context, hash string) error
	Report(ctx context.Context) error
	Import(ctx context.Context, path string) error
	Stats(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, exit"
	helpMember = "Available commands: compose, sent, total, populate, senders, longest, find [id], recipient [number], delete [hash], report, import [file], stats, register, login, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command; the rest of the line, if any, is passed as
// the argument of find, recipient, delete and import. The loop ends on EOF,
// on a cancelled ctx, or on exit/quit.
//
// Message commands are only offered after login. Handler errors are not
// shown here; handlers log and print their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("qc (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn(helpGuest)
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpMember)
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "compose":
			_ = a.Compose(ctx)
		case "sent":
			_ = a.ShowSent(ctx)
		case "total":
			_ = a.Total(ctx)
		case "populate":
			_ = a.Populate(ctx)
		case "senders":
			_ = a.Senders(ctx)
		case "longest":
			_ = a.Longest(ctx)
		case "find":
			_ = a.Find(ctx, arg)
		case "recipient":
			_ = a.Recipient(ctx, arg)
		case "delete":
			_ = a.Delete(ctx, arg)
		case "report":
			_ = a.Report(ctx)
		case "import":
			_ = a.Import(ctx, arg)
		case "stats":
			_ = a.Stats(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
