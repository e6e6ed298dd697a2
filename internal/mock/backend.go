// Package mock is an in-memory rendition of the external the-404 backend
// API, used for development and tests. It mirrors the real backend's
// routes, envelopes and bearer contract but keeps all state in memory.
package mock

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Backend holds the mock fleet and user table.
type Backend struct {
	secret []byte

	mu       sync.Mutex
	users    map[string]*userRecord
	machines []backend.Machine
	apps     []backend.Pm2App
}

func NewBackend(secret string) *Backend {
	return &Backend{
		secret:   []byte(secret),
		users:    seedUsers(),
		machines: backend.FixtureMachines(),
		apps:     backend.FixtureApps(),
	}
}

// SetupRoute registers the backend surface on a gin engine.
func (b *Backend) SetupRoute(engine *gin.Engine) {
	engine.POST("/users/login", b.login)
	engine.POST("/users/forgot-password", b.forgotPassword)
	engine.POST("/users/reset-password-with-new-password", b.resetPassword)

	authed := engine.Group("", b.bearerAuth())
	authed.GET("/machines", b.listMachines)
	authed.POST("/machines", b.addMachine)
	authed.DELETE("/machines/:id", b.deleteMachine)
	authed.GET("/pm2/apps", b.listApps)
	authed.POST("/pm2/apps/:name/toggle", b.toggleApp)
	authed.GET("/pm2/apps/:name/logs", b.appLogs)
}

// bearerAuth validates the Authorization header the way the real backend
// does: a signed, unexpired login token.
func (b *Backend) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			return
		}

		claims, err := validateToken(b.secret, strings.TrimPrefix(header, "Bearer "), purposeLogin)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

func (b *Backend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	user, ok := b.users[req.Email]
	b.mu.Unlock()
	if !ok || !CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := generateToken(b.secret, user.Email, purposeLogin, loginTokenTTL)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, backend.LoginResponse{
		Token: token,
		User: backend.LoginUser{
			Username: user.Username,
			Email:    user.Email,
			IsAdmin:  user.IsAdmin,
		},
	})
}

// forgotPassword answers 2xx whether or not the account exists, logging
// the reset token a mail sender would deliver.
func (b *Backend) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	_, exists := b.users[req.Email]
	b.mu.Unlock()

	if exists {
		token, err := generateToken(b.secret, req.Email, purposeReset, resetTokenTTL)
		if err == nil {
			slog.Info("Password reset requested", "email", req.Email, "token", token)
		}
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (b *Backend) resetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := validateToken(b.secret, req.Token, purposeReset)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired reset token"})
		return
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	user, ok := b.users[claims.Email]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user.PasswordHash = hash
	c.JSON(http.StatusOK, gin.H{"result": true})
}

func (b *Backend) listMachines(c *gin.Context) {
	b.mu.Lock()
	machines := append([]backend.Machine(nil), b.machines...)
	b.mu.Unlock()

	c.JSON(http.StatusOK, backend.MachinesResponse{Result: true, ExistingMachines: machines})
}

func (b *Backend) addMachine(c *gin.Context) {
	var req backend.NewMachine
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URLFor404API) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urlFor404Api is required"})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	created := backend.Machine{
		ID:                      newMachineID(),
		MachineName:             machineNameFromURL(req.URLFor404API),
		URLFor404API:            req.URLFor404API,
		LocalIPAddress:          "0.0.0.0",
		UserHomeDir:             req.UserHomeDir,
		NginxStoragePathOptions: append([]string(nil), req.NginxStoragePathOptions...),
		DateCreated:             now,
		DateLastModified:        now,
	}

	b.mu.Lock()
	b.machines = append(b.machines, created)
	b.mu.Unlock()

	c.JSON(http.StatusCreated, created)
}

func (b *Backend) deleteMachine(c *gin.Context) {
	id := c.Param("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, m := range b.machines {
		if m.ID == id {
			b.machines = append(b.machines[:i], b.machines[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"result": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
}

func (b *Backend) listApps(c *gin.Context) {
	b.mu.Lock()
	apps := append([]backend.Pm2App(nil), b.apps...)
	b.mu.Unlock()

	c.JSON(http.StatusOK, backend.AppsResponse{Result: true, Apps: apps})
}

func (b *Backend) toggleApp(c *gin.Context) {
	name := c.Param("name")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.apps {
		if b.apps[i].Name != name {
			continue
		}
		if b.apps[i].Online() {
			b.apps[i].Status = "stopped"
			b.apps[i].Uptime = 0
		} else {
			b.apps[i].Status = backend.StatusOnline
			b.apps[i].Restarts++
		}
		c.JSON(http.StatusOK, gin.H{"result": true, "status": b.apps[i].Status})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
}

func (b *Backend) appLogs(c *gin.Context) {
	name := c.Param("name")

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, app := range b.apps {
		if app.Name == name {
			c.JSON(http.StatusOK, backend.AppLogsResponse{
				Result: true,
				Lines: []string{
					"[" + name + "] started",
					"[" + name + "] listening",
				},
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
}

// newMachineID mimics the real backend's 24-hex-char document ids.
func newMachineID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:24]
}

func machineNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "unnamed-machine"
	}
	return u.Hostname()
}
