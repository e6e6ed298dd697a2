package handler

import (
	"net/http"

	"github.com/costa-rica/The404-Web/internal/api/http/dto"
	"github.com/costa-rica/The404-Web/internal/forms"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/gin-gonic/gin"
)

// PagesHandler serves the page routes' view-models. Markup and styling
// are rendered elsewhere; these routes return the state those views
// read.
type PagesHandler struct {
	store *session.Store
	login *forms.Login
}

func NewPagesHandler(store *session.Store, login *forms.Login) *PagesHandler {
	return &PagesHandler{store: store, login: login}
}

// Home is the authenticated landing screen.
func (h *PagesHandler) Home(c *gin.Context) {
	st := h.store.Snapshot()
	c.JSON(http.StatusOK, dto.HomePage{
		Username:                st.Username,
		Email:                   st.Email,
		IsAdmin:                 st.IsAdmin,
		MachineName:             st.MachineName,
		URLFor404API:            st.URLFor404API,
		NginxStoragePathOptions: st.NginxStoragePathOptions,
	})
}

// Login is the public login page: the editing state with any pre-filled
// workstation credentials. A session already holding a token redirects
// to /home, matching the auto-redirect the form performs.
func (h *PagesHandler) Login(c *gin.Context) {
	if h.store.Snapshot().LoggedIn() {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	email, password := h.login.Prefill()
	c.JSON(http.StatusOK, gin.H{
		"phase":    "editing",
		"email":    email,
		"password": password,
	})
}

// Register is the public registration page placeholder.
func (h *PagesHandler) Register(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phase": "editing"})
}

// ForgotPassword is the public forgot-password page.
func (h *PagesHandler) ForgotPassword(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phase": "editing"})
}

// ResetPassword is the landing page of an emailed reset link. The token
// from the path is echoed so the form can submit it; it is validated by
// the backend only when the new password is submitted.
func (h *PagesHandler) ResetPassword(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"phase": "editing",
		"token": c.Param("token"),
	})
}
