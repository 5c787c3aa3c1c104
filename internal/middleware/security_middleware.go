package middleware

import (
	"net/http"

	"go-grocery-pos/internal/auth"
	"go-grocery-pos/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "pos_session"

// AuthRequired resolves the session cookie into a server-side session and
// stashes identity in the gin context. Anonymous (or stale/forged cookie)
// requests are redirected to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		sessionID, err := auth.ValidateSessionToken(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		sess, ok := session.Default.Get(sessionID)
		if !ok {
			// Valid signature but the server no longer knows the session
			// (restart or logout elsewhere). Back to login.
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("sessionID", sess.ID)
		c.Set("userID", sess.UserID)
		c.Set("username", sess.Username)
		c.Set("role", sess.Role)
		c.Next()
	}
}

// RequireRole gates a route on the given roles. Superadmin passes every
// gate. Authenticated users with the wrong role are sent to the 403 page,
// not back to login.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !auth.Allowed(role, roles...) {
			c.Redirect(http.StatusFound, "/unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
