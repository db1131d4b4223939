// Package middleware holds gin middleware for the API server.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crewbase.app/org-server/internal/service"
)

const (
	// SessionCookieName is the browser session cookie.
	SessionCookieName = "crewbase_session"
	// SessionIDHeader carries the session for non-browser clients.
	SessionIDHeader = "X-Session-ID"

	identityKey = "identity"
)

// RequireIdentity resolves the session cookie or X-Session-ID header into a
// caller identity and aborts with 401 when there is none. Handlers behind it
// can rely on Identity(c) returning a valid caller.
func RequireIdentity(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		SetIdentity(c, service.Identity{UserID: user.ID, Email: user.Email})
		c.Next()
	}
}

// SetIdentity attaches a caller identity to the request context.
func SetIdentity(c *gin.Context, ident service.Identity) {
	c.Set(identityKey, ident)
}

// Identity returns the caller identity set by RequireIdentity.
func Identity(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	ident, ok := v.(service.Identity)
	return ident, ok
}

func sessionID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(SessionIDHeader)
	if raw == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			return 0, false
		}
		raw = cookie
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
