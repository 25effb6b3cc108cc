package middleware

import (
	"net/http"
	"time"

	"keshwala/services/auth"
	"keshwala/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SessionIDKey is the gin context key holding the browser session ID.
	SessionIDKey = "sessionID"
	// UserKey is the gin context key holding the signed-in *models.User.
	UserKey = "user"
)

// SessionMiddleware gives every visitor a browser session. The session ID
// travels in a signed cookie; a missing, expired or forged cookie is replaced
// by a fresh session.
func SessionMiddleware(issuer *utils.TokenIssuer, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(utils.SessionCookie); err == nil && token != "" {
			if id, err := issuer.ExtractIDFromToken(token); err == nil {
				c.Set(SessionIDKey, id)
				c.Next()
				return
			}
		}

		id := uuid.NewString()
		token, err := issuer.GenerateToken(id, ttl)
		if err != nil {
			zap.L().Error("Failed to sign session token", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not start a session")
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(utils.SessionCookie, token, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the session ID set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// RequireUser aborts with 401 unless the session has a signed-in user.
func RequireUser(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := authSvc.CurrentUser(c.Request.Context(), SessionID(c))
		if user == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Sign in required", "this action needs a signed-in account")
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}
