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
	Categories(ctx context.Context) error
	List(ctx context.Context) error
	AddItem(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches to methods on 'a'. Handler errors are printed and the loop
// goes on. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in, additionally:
//	  - categories     list inventory categories
//	  - list           list the items of a category
//	  - add            add an item to a category
//	  - profile        show the current user
//	  - editprofile    change name or email
//	  - logout         log out
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("agro %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var handler func(context.Context) error
		guarded := true

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Comandos: categories, (l)ist, add, profile, editprofile, logout, exit")
			} else {
				printlnFn("Comandos: register, login, exit")
			}
			continue

		case "register":
			handler, guarded = a.Register, false
		case "login":
			handler, guarded = a.Login, false
		case "categories", "c":
			handler = a.Categories
		case "list", "l":
			handler = a.List
		case "add":
			handler = a.AddItem
		case "profile":
			handler = a.Profile
		case "editprofile":
			handler = a.EditProfile
		case "logout":
			handler = a.Logout

		case "exit", "quit":
			printlnFn("¡Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
			continue
		}

		if guarded && !a.isLoggedIn() {
			printlnFn("Inicia sesión primero (login)")
			continue
		}
		if err := handler(ctx); err != nil {
			printlnFn(describeError(err))
		}
	}
}
