package forms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSubmitSuccess(t *testing.T) {
	store := session.NewStore()
	client := backend.NewClient(backend.Config{UseMockData: true})
	form := NewLogin(client, store)

	outcome, token := form.Submit(context.Background(), "nick@mail.com", "test")
	require.True(t, outcome.Submitted)
	assert.NotEmpty(t, token)

	st := store.Snapshot()
	assert.Equal(t, token, st.Token)
	assert.Equal(t, "nick@mail.com", st.Email)
}

func TestLoginSubmitValidation(t *testing.T) {
	store := session.NewStore()
	client := backend.NewClient(backend.Config{UseMockData: true})
	form := NewLogin(client, store)

	outcome, _ := form.Submit(context.Background(), "  ", "pw")
	assert.False(t, outcome.Submitted)
	assert.Equal(t, "Email is required", outcome.Error)
	assert.Equal(t, http.StatusBadRequest, outcome.Status)

	outcome, _ = form.Submit(context.Background(), "a@b.c", "")
	assert.Equal(t, "Password is required", outcome.Error)

	assert.Empty(t, store.Snapshot().Token, "validation failures never touch the store")
}

func TestLoginSubmitNonJSON500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("oops"))
	}))
	defer srv.Close()

	store := session.NewStore()
	client := backend.NewClient(backend.Config{BaseURL: srv.URL})
	form := NewLogin(client, store)

	outcome, token := form.Submit(context.Background(), "a@b.c", "pw")
	assert.False(t, outcome.Submitted, "form stays in editing")
	assert.Equal(t, "server error: 500", outcome.Error)
	assert.Equal(t, http.StatusInternalServerError, outcome.Status)
	assert.Empty(t, token)
	assert.Equal(t, uint64(0), store.Snapshot().Version, "store remains untouched")
}

func TestLoginSubmitBackendErrorVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	store := session.NewStore()
	client := backend.NewClient(backend.Config{BaseURL: srv.URL})
	form := NewLogin(client, store)

	outcome, _ := form.Submit(context.Background(), "a@b.c", "bad")
	assert.Equal(t, "invalid credentials", outcome.Error)
	assert.Equal(t, http.StatusUnauthorized, outcome.Status)
}

func TestLoginPrefillWorkstationMode(t *testing.T) {
	form := NewLogin(nil, nil)

	email, password := form.Prefill()
	assert.Empty(t, email)
	assert.Empty(t, password)

	form.Mode = "workstation"
	email, password = form.Prefill()
	assert.Equal(t, "nrodrig1@gmail.com", email)
	assert.Equal(t, "test", password)
}

func TestForgotPasswordSubmit(t *testing.T) {
	client := backend.NewClient(backend.Config{UseMockData: true})
	form := NewForgotPassword(client)

	outcome := form.Submit(context.Background(), "nick@mail.com")
	assert.True(t, outcome.Submitted)

	outcome = form.Submit(context.Background(), "")
	assert.False(t, outcome.Submitted)
	assert.Equal(t, "Email is required", outcome.Error)
}

func TestResetPasswordValidation(t *testing.T) {
	client := backend.NewClient(backend.Config{UseMockData: true})
	form := NewResetPassword(client)

	outcome := form.Submit(context.Background(), "reset-tok", "")
	assert.Equal(t, "Please enter a new password", outcome.Error)

	outcome = form.Submit(context.Background(), "reset-tok", "x")
	assert.Equal(t, "Password must be at least 2 characters long", outcome.Error)

	outcome = form.Submit(context.Background(), "reset-tok", "ok")
	assert.True(t, outcome.Submitted)
}
