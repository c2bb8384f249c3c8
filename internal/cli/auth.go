package cli

import (
	"context"
	"fmt"

	"github.com/cjsavings/savings-client/internal/common"
	"github.com/cjsavings/savings-client/internal/services"
)

func (a *App) login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	result, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.customer = &result.Customer
	a.state = result.State

	switch result.State {
	case services.StatePendingVerification:
		fmt.Fprintln(a.out, "This device is awaiting verification. An administrator must approve it before you can sign in.")
	default:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", result.Customer.FullName)
	}
}

func (a *App) register(ctx context.Context) {

	payload := services.RegisterPayload{}
	var err error

	if payload.FullName, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if payload.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if payload.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)
	payload.Password = string(password)

	res, err := a.auth.Register(ctx, payload)
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}

	message := res.Get("message").String()
	if message == "" {
		message = "Registered. You can now log in."
	}
	fmt.Fprintln(a.out, message)
}

func (a *App) whoami(ctx context.Context) {

	customer, state, err := a.auth.Me(ctx)
	if err != nil {
		// keep the current view; the session may still be fine
		fmt.Fprintln(a.out, "Could not refresh session; try again later.")
		return
	}

	a.customer = customer
	a.state = state

	switch state {
	case services.StateUnauthenticated:
		fmt.Fprintln(a.out, "Not logged in.")
	case services.StatePendingVerification:
		fmt.Fprintf(a.out, "%s <%s> — device awaiting verification\n", customer.FullName, customer.Email)
	case services.StateActive:
		fmt.Fprintf(a.out, "%s <%s>\n", customer.FullName, customer.Email)
	}
}

func (a *App) logout(ctx context.Context) {

	if err := a.auth.Logout(ctx); err != nil {
		// the token may still be on disk; better to say so than to
		// pretend the session ended
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return
	}

	a.customer = nil
	a.state = services.StateUnauthenticated
	fmt.Fprintln(a.out, "Logged out.")
}
