package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName is the HTTP-only session cookie the gate inspects.
const CookieName = "auth-token"

// Page routes reachable without a session. The prefix list covers the
// emailed reset link, which carries a token path segment.
var publicRoutes = []string{"/login", "/register", "/forgot-password"}

var publicPrefixes = []string{"/forgot-password/"}

// Prefixes never gated: API routes handle their own auth, the rest are
// non-page resources (assets, health probe).
var passThroughPrefixes = []string{"/api", "/images/", "/icons/", "/static/"}

var passThroughExact = []string{"/favicon.ico", "/health"}

// AuthGate redirects unauthenticated page navigation to /login. The check
// is presence-only: the cookie's value is never validated here, since real
// authorization is the backend's job on every API call. The original path
// is not forwarded as a return-to target.
func AuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range passThroughPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		for _, exact := range passThroughExact {
			if path == exact {
				c.Next()
				return
			}
		}
		for _, route := range publicRoutes {
			if path == route {
				c.Next()
				return
			}
		}
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if token, err := c.Cookie(CookieName); err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
