package cli

import (
	"context"
	"fmt"

	"github.com/cjsavings/savings-client/internal/services"
)

func (a *App) products(ctx context.Context) {

	res, err := a.savings.AccountProducts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	list := res.Get("data")
	if !list.IsArray() {
		list = res
	}
	if !list.IsArray() || len(list.Array()) == 0 {
		fmt.Fprintln(a.out, "No active account products.")
		return
	}
	for _, p := range list.Array() {
		fmt.Fprintf(a.out, "%-24s %-12s min %.2f, rate %.2f%%\n",
			p.Get("name").String(),
			p.Get("accountType").String(),
			p.Get("minimumBalance").Float(),
			p.Get("interestRate").Float())
	}
}

func (a *App) accounts(ctx context.Context) {

	accounts, err := a.savings.MyAccounts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No savings accounts yet; use 'open' to create one.")
		return
	}
	for _, acc := range accounts {
		verified := ""
		if !acc.IsVerified {
			verified = " (unverified)"
		}
		fmt.Fprintf(a.out, "%s  %-12s %12.2f%s\n", acc.AccountNumber, acc.AccountType, acc.Balance, verified)
		fmt.Fprintf(a.out, "  id: %s\n", acc.ID)
	}
}

func (a *App) openAccount(ctx context.Context) {

	productID, err := GetSimpleText(a.reader, "Product id (empty for default)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	accountType, err := GetSimpleText(a.reader, "Account type (empty for default)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res, err := a.savings.CreateAccount(ctx, services.CreateAccountParams{ProductID: productID, AccountType: accountType})
	if err != nil {
		fmt.Fprintf(a.out, "Could not open account: %v\n", err)
		return
	}

	message := res.Get("message").String()
	if message == "" {
		message = "Account created."
	}
	fmt.Fprintln(a.out, message)
}
