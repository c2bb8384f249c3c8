package models

import "github.com/tidwall/gjson"

// Account is a savings account in canonical form.
type Account struct {
	ID             string
	AccountNumber  string
	AccountType    string
	Balance        float64
	MinimumBalance float64
	IsVerified     bool
	CreatedAt      string
}

// AccountFromJSON normalizes one account object. Accepted id variants:
// "id", "_id", "accountId". Numeric fields coerce from either JSON numbers
// or numeric strings; missing values become zero.
func AccountFromJSON(r gjson.Result) (Account, bool) {
	if !r.IsObject() {
		return Account{}, false
	}
	return Account{
		ID:             firstString(r, "id", "_id", "accountId"),
		AccountNumber:  r.Get("accountNumber").String(),
		AccountType:    r.Get("accountType").String(),
		Balance:        r.Get("balance").Float(),
		MinimumBalance: r.Get("minimumBalance").Float(),
		IsVerified:     r.Get("isVerified").Bool(),
		CreatedAt:      r.Get("createdAt").String(),
	}, true
}

// AccountsFromJSON normalizes an account-list response. Accepted variants:
//
//   - {"data": {"accounts": [...]}}
//   - {"data": [...]}
//   - {"accounts": [...]}
//   - [...] (bare array)
func AccountsFromJSON(r gjson.Result) []Account {
	list := r
	switch {
	case r.Get("data.accounts").IsArray():
		list = r.Get("data.accounts")
	case r.Get("data").IsArray():
		list = r.Get("data")
	case r.Get("accounts").IsArray():
		list = r.Get("accounts")
	}

	accounts := make([]Account, 0, len(list.Array()))
	for _, item := range list.Array() {
		if a, ok := AccountFromJSON(item); ok {
			accounts = append(accounts, a)
		}
	}
	return accounts
}
