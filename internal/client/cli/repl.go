package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Favourite(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Dates(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Calendar(ctx context.Context, args []string) error
}

// runREPL reads commands line by line and dispatches them to a. The loop
// exits on EOF, on "exit" or "quit", or when ctx is done.
//
//	Not logged in:
//	  help, register, login, exit
//
//	Logged in:
//	  help, list, show N, add, edit N, delete N, fav N,
//	  search [text], filter ..., dates START END, clear,
//	  calendar [next|prev|YYYY-MM], whoami, logout, exit
//
// Command errors are reported by the commands themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("ts (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Please register or login first")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, show N, add, edit N, delete N, fav N, search [text], " +
				"filter <start> <end>|last <days>|off, dates <start> <end>, clear, calendar [next|prev|YYYY-MM], whoami, logout, exit")
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "add":
			_ = a.Add(ctx)
		case "edit":
			_ = a.Edit(ctx, args)
		case "delete", "rm":
			_ = a.Delete(ctx, args)
		case "fav":
			_ = a.Favourite(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "filter":
			_ = a.Filter(ctx, args)
		case "dates":
			_ = a.Dates(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "calendar", "cal":
			_ = a.Calendar(ctx, args)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "login", "register":
			printlnFn("Already logged in, logout first")
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
