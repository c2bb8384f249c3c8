package cli

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/cjsavings/savings-client/internal/models"
)

func (a *App) transfer(ctx context.Context, kind string) {

	accountID, err := GetSimpleText(a.reader, "Account id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	var res gjson.Result
	if kind == "deposit" {
		res, err = a.savings.Deposit(ctx, accountID, amount, description)
	} else {
		res, err = a.savings.Withdraw(ctx, accountID, amount, description)
	}
	if err != nil {
		fmt.Fprintf(a.out, "%s failed: %v\n", kind, err)
		return
	}

	message := res.Get("message").String()
	if message == "" {
		message = fmt.Sprintf("%s of %.2f accepted", kind, amount)
	}
	fmt.Fprintln(a.out, message)
}

func (a *App) history(ctx context.Context) {

	accountID, err := GetSimpleText(a.reader, "Account id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	transactions, err := a.savings.AccountHistory(ctx, accountID, 1, 20)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printTransactions(transactions)
}

func (a *App) transactions(ctx context.Context) {

	transactions, err := a.savings.Transactions(ctx, 1, 50)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printTransactions(transactions)
}

func (a *App) summary(ctx context.Context) {

	start, err := GetSimpleText(a.reader, "Start date (YYYY-MM-DD, empty for all time)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	end := ""
	if start != "" {
		if end, err = GetSimpleText(a.reader, "End date (YYYY-MM-DD)", a.out); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
	}

	res, err := a.savings.Summary(ctx, start, end)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	data := res.Get("data")
	if !data.Exists() {
		data = res
	}
	fmt.Fprintf(a.out, "Deposits: %.2f  Withdrawals: %.2f\n",
		data.Get("totalDeposits").Float(), data.Get("totalWithdrawals").Float())
}

func (a *App) printTransactions(transactions []models.Transaction) {
	if len(transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions.")
		return
	}
	for _, tx := range transactions {
		fmt.Fprintf(a.out, "%-10s %12.2f  balance %12.2f  %s %s\n",
			tx.Type, tx.Amount, tx.BalanceAfter, tx.Status, tx.CreatedAt)
	}
}
