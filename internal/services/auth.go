// Package services contains the application services of the savings client:
// the auth session manager and the savings/transactions operations, both
// layered over the request gateway.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cjsavings/savings-client/internal/api"
	"github.com/cjsavings/savings-client/internal/common"
	"github.com/cjsavings/savings-client/internal/logging"
	"github.com/cjsavings/savings-client/internal/models"
)

// Gateway is the request surface the services depend on; satisfied by
// *api.Client and by fakes in tests.
type Gateway interface {
	Request(ctx context.Context, method, path string, body any, hdr http.Header) (gjson.Result, error)
	Authorized(ctx context.Context, method, path string, body any, hdr http.Header) (gjson.Result, error)
}

// TokenStore is the session-token persistence the auth service drives.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// RegisterPayload mirrors the registration form. The service performs no
// validation; field rules are a screen concern.
type RegisterPayload struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	DOB              string `json:"dob,omitempty"`
	Gender           string `json:"gender,omitempty"`
	EmploymentStatus string `json:"employmentStatus,omitempty"`
	JobTitle         string `json:"jobTitle,omitempty"`
	Salary           string `json:"salary,omitempty"`
	BusinessName     string `json:"businessName,omitempty"`
	MonthlyRevenue   string `json:"monthlyRevenue,omitempty"`
}

// LoginResult is the outcome of a login attempt that did not fail outright.
// A device rejected by verification is a valid terminal outcome, not an
// error: State is then PendingVerification and no token has been stored.
type LoginResult struct {
	Customer models.Customer
	State    SessionState
	Raw      gjson.Result
}

// AuthService orchestrates login, registration, logout, and the who-am-I
// query.
//
// Contract:
//   - Register: submits the payload with the device-id header; never
//     touches the token store.
//   - Login: persists the returned token; converts the device-not-verified
//     rejection into a PendingVerification result instead of an error.
//   - Me: no token means Unauthenticated with no network call; a failed
//     call means Unknown (token retained).
//   - Logout: clears the token store, propagating storage failures.
type AuthService interface {
	Register(ctx context.Context, payload RegisterPayload) (gjson.Result, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Me(ctx context.Context) (*models.Customer, SessionState, error)
	Logout(ctx context.Context) error
}

type authService struct {
	gateway  Gateway
	sessions TokenStore
	devices  api.DeviceIDSource
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway,
// token store, and device identity provider.
func NewAuthService(gateway Gateway, sessions TokenStore, devices api.DeviceIDSource, log logging.Logger) AuthService {
	return &authService{gateway: gateway, sessions: sessions, devices: devices, log: log.With("component", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *authService) deviceHeader(ctx context.Context) (http.Header, error) {
	id, err := a.devices.DeviceID(ctx)
	if err != nil {
		return nil, err
	}
	hdr := http.Header{}
	hdr.Set(common.HeaderDeviceID, id)
	return hdr, nil
}

func (a *authService) Register(ctx context.Context, payload RegisterPayload) (gjson.Result, error) {
	hdr, err := a.deviceHeader(ctx)
	if err != nil {
		return gjson.Result{}, err
	}
	// Registration does not establish a session; the token store stays
	// untouched regardless of outcome.
	return a.gateway.Request(ctx, http.MethodPost, "/customer-auth/register", payload, hdr)
}

func (a *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	hdr, err := a.deviceHeader(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	res, err := a.gateway.Request(ctx, http.MethodPost, "/customer-auth/login", loginRequest{Email: email, Password: password}, hdr)
	if err != nil {
		if isDeviceVerificationRejection(err) {
			a.log.Info(ctx, "login held for device verification", "email", email)
			return LoginResult{
				Customer: models.Customer{DeviceVerified: false},
				State:    StatePendingVerification,
				Raw:      gjson.Parse(`{"customer":{"deviceVerified":false}}`),
			}, nil
		}
		return LoginResult{}, err
	}

	if token := res.Get("token").String(); token != "" {
		if err := a.sessions.SetToken(ctx, token); err != nil {
			return LoginResult{}, fmt.Errorf("login succeeded but token could not be stored: %w", err)
		}
	}

	customer := models.CustomerFromJSON(models.ProfileOf(res))
	state := StatePendingVerification
	if customer.DeviceVerified {
		state = StateActive
	}
	return LoginResult{Customer: customer, State: state, Raw: res}, nil
}

func (a *authService) Me(ctx context.Context) (*models.Customer, SessionState, error) {
	token, err := a.sessions.Token(ctx)
	if err != nil {
		return nil, StateUnknown, err
	}
	if token == "" {
		return nil, StateUnauthenticated, nil
	}

	res, err := a.gateway.Authorized(ctx, http.MethodGet, "/customer-auth/me", nil, nil)
	if err != nil {
		// Transient failure must not log the user out; the caller keeps
		// its current view and may retry.
		a.log.Warn(ctx, "could not refresh session", "error", err)
		return nil, StateUnknown, err
	}

	customer := models.CustomerFromJSON(models.ProfileOf(res))
	state := StatePendingVerification
	if customer.DeviceVerified {
		state = StateActive
	}
	return &customer, state, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.ClearToken(ctx)
}

// isDeviceVerificationRejection matches the specific backend rejection of
// an unapproved device: HTTP 403 with a message naming both "device" and
// "verify" (case-insensitive).
func isDeviceVerificationRejection(err error) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
		return false
	}
	message := strings.ToLower(apiErr.Message)
	return strings.Contains(message, "device") && strings.Contains(message, "verify")
}
