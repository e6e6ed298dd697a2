// Package forms implements the submission flows of the authentication
// forms. Each form is a linear editing -> submitted flow: validation
// failures and server errors keep the form in editing with a message, a
// success moves it to submitted.
package forms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/session"
)

// Minimum accepted length for a new password.
const minPasswordLength = 2

// Outcome is the result of one submit attempt. Error empty and Submitted
// true means the flow reached its terminal state. Status is the HTTP
// status an API route should answer with when Error is set.
type Outcome struct {
	Submitted bool
	Error     string
	Status    int
}

func editing(message string) Outcome {
	return Outcome{Error: message, Status: http.StatusBadRequest}
}

func serverError(err error) Outcome {
	out := Outcome{Error: err.Error(), Status: http.StatusInternalServerError}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		out.Status = apiErr.Status
	}
	return out
}

var submitted = Outcome{Submitted: true}

// Login collects credentials, authenticates against the backend and
// populates the session store on success.
type Login struct {
	client *backend.Client
	store  *session.Store

	// Mode "workstation" pre-fills development credentials.
	Mode string
}

func NewLogin(client *backend.Client, store *session.Store) *Login {
	return &Login{client: client, store: store}
}

// Prefill returns the initial field values for the editing state.
func (f *Login) Prefill() (email, password string) {
	if f.Mode == "workstation" {
		return "nrodrig1@gmail.com", "test"
	}
	return "", ""
}

// Submit validates locally, then authenticates. The returned token is
// empty unless the outcome is submitted.
func (f *Login) Submit(ctx context.Context, email, password string) (Outcome, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return editing("Email is required"), ""
	}
	if password == "" {
		return editing("Password is required"), ""
	}

	resp, err := f.client.Login(ctx, email, password)
	if err != nil {
		return serverError(err), ""
	}

	user := session.User{
		Username: resp.User.Username,
		Email:    resp.User.Email,
		IsAdmin:  resp.User.IsAdmin,
	}
	if user.Email == "" {
		user.Email = email
	}
	f.store.LoginUser(resp.Token, user)
	slog.Info("User logged in", "email", email, "isAdmin", user.IsAdmin)
	return submitted, resp.Token
}

// ForgotPassword requests reset instructions. The confirmation view is
// shown regardless of whether the account exists.
type ForgotPassword struct {
	client *backend.Client
}

func NewForgotPassword(client *backend.Client) *ForgotPassword {
	return &ForgotPassword{client: client}
}

func (f *ForgotPassword) Submit(ctx context.Context, email string) Outcome {
	email = strings.TrimSpace(email)
	if email == "" {
		return editing("Email is required")
	}

	if err := f.client.ForgotPassword(ctx, email); err != nil {
		return serverError(err)
	}
	return submitted
}

// ResetPassword exchanges an emailed reset token for a new password.
type ResetPassword struct {
	client *backend.Client
}

func NewResetPassword(client *backend.Client) *ResetPassword {
	return &ResetPassword{client: client}
}

func (f *ResetPassword) Submit(ctx context.Context, token, newPassword string) Outcome {
	if newPassword == "" {
		return editing("Please enter a new password")
	}
	if len(newPassword) < minPasswordLength {
		return editing("Password must be at least 2 characters long")
	}

	if err := f.client.ResetPassword(ctx, token, newPassword); err != nil {
		return serverError(err)
	}
	return submitted
}
