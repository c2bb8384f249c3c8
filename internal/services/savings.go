package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/cjsavings/savings-client/internal/common"
	"github.com/cjsavings/savings-client/internal/logging"
	"github.com/cjsavings/savings-client/internal/models"
)

// CreateAccountParams selects the product/terms of a new savings account.
type CreateAccountParams struct {
	ProductID      string  `json:"productId,omitempty"`
	AccountType    string  `json:"accountType,omitempty"`
	MinimumBalance float64 `json:"minimumBalance,omitempty"`
	InterestRate   float64 `json:"interestRate,omitempty"`
}

// SavingsService covers the savings-account and transaction operations.
// Every call is an authorized gateway request; error behavior is uniformly
// the gateway's. Deposit and Withdraw reject a missing account id or a
// non-positive amount locally, before any network traffic.
type SavingsService interface {
	AccountProducts(ctx context.Context) (gjson.Result, error)
	CreateAccount(ctx context.Context, params CreateAccountParams) (gjson.Result, error)
	MyAccounts(ctx context.Context) ([]models.Account, error)
	AccountHistory(ctx context.Context, accountID string, page, limit int) ([]models.Transaction, error)
	Deposit(ctx context.Context, accountID string, amount float64, description string) (gjson.Result, error)
	Withdraw(ctx context.Context, accountID string, amount float64, description string) (gjson.Result, error)
	Summary(ctx context.Context, startDate, endDate string) (gjson.Result, error)
	Transactions(ctx context.Context, page, limit int) ([]models.Transaction, error)
}

type savingsService struct {
	gateway Gateway
	log     logging.Logger
}

func NewSavingsService(gateway Gateway, log logging.Logger) SavingsService {
	return &savingsService{gateway: gateway, log: log.With("component", "savings")}
}

type transferRequest struct {
	AccountID   string  `json:"accountId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

func (s *savingsService) AccountProducts(ctx context.Context) (gjson.Result, error) {
	return s.gateway.Authorized(ctx, http.MethodGet, "/account-products/active", nil, nil)
}

func (s *savingsService) CreateAccount(ctx context.Context, params CreateAccountParams) (gjson.Result, error) {
	return s.gateway.Authorized(ctx, http.MethodPost, "/customer/savings-accounts", params, nil)
}

func (s *savingsService) MyAccounts(ctx context.Context) ([]models.Account, error) {
	res, err := s.gateway.Authorized(ctx, http.MethodGet, "/customer/savings-accounts/mine", nil, nil)
	if err != nil {
		return nil, err
	}
	return models.AccountsFromJSON(res), nil
}

func (s *savingsService) AccountHistory(ctx context.Context, accountID string, page, limit int) ([]models.Transaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", common.ErrInvalidArgument)
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	path := fmt.Sprintf("/customer/transactions/account/%s?page=%d&limit=%d", url.PathEscape(accountID), page, limit)
	res, err := s.gateway.Authorized(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.TransactionsFromJSON(res), nil
}

func (s *savingsService) Deposit(ctx context.Context, accountID string, amount float64, description string) (gjson.Result, error) {
	if err := validateTransfer(accountID, amount); err != nil {
		return gjson.Result{}, err
	}
	return s.gateway.Authorized(ctx, http.MethodPost, "/customer/transactions/deposit",
		transferRequest{AccountID: accountID, Amount: amount, Description: description}, nil)
}

func (s *savingsService) Withdraw(ctx context.Context, accountID string, amount float64, description string) (gjson.Result, error) {
	if err := validateTransfer(accountID, amount); err != nil {
		return gjson.Result{}, err
	}
	return s.gateway.Authorized(ctx, http.MethodPost, "/customer/transactions/withdrawal",
		transferRequest{AccountID: accountID, Amount: amount, Description: description}, nil)
}

func (s *savingsService) Summary(ctx context.Context, startDate, endDate string) (gjson.Result, error) {
	path := "/customer/transactions/summary"
	if startDate != "" && endDate != "" {
		path += fmt.Sprintf("?startDate=%s&endDate=%s", url.QueryEscape(startDate), url.QueryEscape(endDate))
	}
	return s.gateway.Authorized(ctx, http.MethodGet, path, nil, nil)
}

func (s *savingsService) Transactions(ctx context.Context, page, limit int) ([]models.Transaction, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}

	path := fmt.Sprintf("/customer/transactions?page=%d&limit=%d", page, limit)
	res, err := s.gateway.Authorized(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.TransactionsFromJSON(res), nil
}

func validateTransfer(accountID string, amount float64) error {
	if accountID == "" {
		return fmt.Errorf("%w: account id is required", common.ErrInvalidArgument)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", common.ErrInvalidArgument)
	}
	return nil
}
