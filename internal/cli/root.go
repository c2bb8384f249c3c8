package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.customer != nil && a.customer.Email != "" {
		s = a.customer.Email + " "
	}
	s += a.state.String()
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the savings CLI (type 'help' for commands)")

	// establish the initial session view; a transient failure keeps Unknown
	a.whoami(ctx)

	for {
		fmt.Fprintf(a.out, "sav %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, products, accounts, open, deposit, withdraw, history, summary, transactions, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, whoami, exit")
			}
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "products":
			a.products(ctx)
		case "accounts":
			a.accounts(ctx)
		case "open":
			a.openAccount(ctx)
		case "deposit":
			a.transfer(ctx, "deposit")
		case "withdraw":
			a.transfer(ctx, "withdraw")
		case "history":
			a.history(ctx)
		case "summary":
			a.summary(ctx)
		case "transactions":
			a.transactions(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
