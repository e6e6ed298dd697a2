package http

import (
	"github.com/costa-rica/The404-Web/internal/api/http/handler"
	"github.com/costa-rica/The404-Web/internal/api/http/middleware"
	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/forms"
	"github.com/costa-rica/The404-Web/internal/screens"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/gin-gonic/gin"
)

// Services wires the shared state into the route handlers. Store and
// Client are constructed once at startup and injected everywhere.
type Services struct {
	Store  *session.Store
	Client *backend.Client

	// Mode "workstation" pre-fills login credentials for development.
	Mode         string
	CookieSecure bool
}

func SetupRoute(engine *gin.Engine, srvs *Services) {
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.AuthGate())

	loginForm := forms.NewLogin(srvs.Client, srvs.Store)
	loginForm.Mode = srvs.Mode
	forgotForm := forms.NewForgotPassword(srvs.Client)
	resetForm := forms.NewResetPassword(srvs.Client)

	machinesScreen := screens.NewMachines(srvs.Client, srvs.Store)
	appsScreen := screens.NewApps(srvs.Client, srvs.Store)

	healthHandler := handler.NewHealthHandler()
	engine.GET("/health", healthHandler.Check)

	authHandler := handler.NewAuthHandler(loginForm, forgotForm, resetForm, srvs.Store, srvs.CookieSecure)
	auth := engine.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	pagesHandler := handler.NewPagesHandler(srvs.Store, loginForm)
	engine.GET("/login", pagesHandler.Login)
	engine.GET("/register", pagesHandler.Register)
	engine.GET("/forgot-password", pagesHandler.ForgotPassword)
	engine.GET("/forgot-password/reset/:token", pagesHandler.ResetPassword)
	engine.GET("/home", pagesHandler.Home)

	machinesHandler := handler.NewMachinesHandler(machinesScreen, srvs.Store)
	machines := engine.Group("/servers/machines")
	machines.GET("", machinesHandler.List)
	machines.POST("", machinesHandler.Add)
	machines.DELETE("/:id", machinesHandler.Delete)
	machines.POST("/:id/connect", machinesHandler.Connect)
	machines.POST("/disconnect", machinesHandler.Disconnect)

	pm2Handler := handler.NewPm2Handler(appsScreen)
	pm2 := engine.Group("/servers/pm2")
	pm2.GET("", pm2Handler.List)
	pm2.POST("/:name/toggle", pm2Handler.Toggle)
	pm2.GET("/:name/logs", pm2Handler.Logs)
}
