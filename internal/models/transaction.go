package models

import "github.com/tidwall/gjson"

// Transaction is a ledger entry in canonical form.
type Transaction struct {
	ID           string
	Type         string
	Amount       float64
	BalanceAfter float64
	Description  string
	Status       string
	CreatedAt    string
}

// TransactionFromJSON normalizes one transaction object. Accepted id
// variants: "_id", "transactionId", "id".
func TransactionFromJSON(r gjson.Result) Transaction {
	return Transaction{
		ID:           firstString(r, "_id", "transactionId", "id"),
		Type:         r.Get("type").String(),
		Amount:       r.Get("amount").Float(),
		BalanceAfter: r.Get("balanceAfter").Float(),
		Description:  r.Get("description").String(),
		Status:       r.Get("status").String(),
		CreatedAt:    r.Get("createdAt").String(),
	}
}

// TransactionsFromJSON normalizes a transaction-list response. The backend
// answers with one of three nested shapes, each handled explicitly:
//
//   - {"data": {"transactions": [...]}}
//   - {"data": [...]}
//   - [...] (bare array)
//
// Anything else yields an empty slice.
func TransactionsFromJSON(r gjson.Result) []Transaction {
	var list gjson.Result
	switch {
	case r.Get("data.transactions").IsArray():
		list = r.Get("data.transactions")
	case r.Get("data").IsArray():
		list = r.Get("data")
	case r.IsArray():
		list = r
	default:
		return []Transaction{}
	}

	items := list.Array()
	transactions := make([]Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, TransactionFromJSON(item))
	}
	return transactions
}
