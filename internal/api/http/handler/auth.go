package handler

import (
	"net/http"

	"github.com/costa-rica/The404-Web/internal/api/http/dto"
	"github.com/costa-rica/The404-Web/internal/api/http/middleware"
	"github.com/costa-rica/The404-Web/internal/forms"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 7 * 24 * 60 * 60 // 7 days

// AuthHandler serves the internal auth routes: they proxy the backend's
// user endpoints and additionally manage the auth-token cookie the gate
// checks.
type AuthHandler struct {
	login        *forms.Login
	forgot       *forms.ForgotPassword
	reset        *forms.ResetPassword
	store        *session.Store
	cookieSecure bool
}

func NewAuthHandler(login *forms.Login, forgot *forms.ForgotPassword, reset *forms.ResetPassword, store *session.Store, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		login:        login,
		forgot:       forgot,
		reset:        reset,
		store:        store,
		cookieSecure: cookieSecure,
	}
}

// Login authenticates, populates the session store and sets the
// HTTP-only auth-token cookie. The token is also returned in the body so
// the browser side can attach it to direct backend calls.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, token := h.login.Submit(c.Request.Context(), req.Email, req.Password)
	if !outcome.Submitted {
		c.JSON(outcome.Status, dto.ErrorResponse{Error: outcome.Error})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, cookieMaxAge, "/", "", h.cookieSecure, true)

	st := h.store.Snapshot()
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.LoginUser{
			Username: st.Username,
			Email:    st.Email,
			IsAdmin:  st.IsAdmin,
		},
	})
}

// Logout clears the cookie and fully resets the store, machine context
// included.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.cookieSecure, true)
	h.store.LogoutUserFully()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Verify reports cookie presence only. It is the rehydration hook a
// fresh process uses to decide whether to send the user through login;
// the token itself is never validated here.
func (h *AuthHandler) Verify(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "No token found"})
		return
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{Success: true, HasToken: true})
}

// ForgotPassword requests reset instructions for an email address.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome := h.forgot.Submit(c.Request.Context(), req.Email)
	if !outcome.Submitted {
		c.JSON(outcome.Status, dto.ErrorResponse{Error: outcome.Error})
		return
	}

	c.JSON(http.StatusOK, dto.SubmittedResponse{
		Success:   true,
		Submitted: true,
		Message:   "If an account exists for " + req.Email + ", you will receive password reset instructions.",
	})
}

// ResetPassword sets a new password from an emailed reset token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome := h.reset.Submit(c.Request.Context(), req.Token, req.NewPassword)
	if !outcome.Submitted {
		c.JSON(outcome.Status, dto.ErrorResponse{Error: outcome.Error})
		return
	}

	c.JSON(http.StatusOK, dto.SubmittedResponse{
		Success:   true,
		Submitted: true,
		Message:   "Your password has been updated. You can now sign in with your new password.",
	})
}
