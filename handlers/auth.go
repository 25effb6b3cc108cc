package handlers

import (
	"net/http"
	"time"

	"keshwala/middleware"
	"keshwala/services/auth"
	"keshwala/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the session's sign-in state.
type AuthHandler struct {
	auth      auth.AuthService
	keepAlive time.Duration
	logger    *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authSvc auth.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, keepAlive: 25 * time.Second, logger: logger}
}

// ProviderRequest is a federated sign-in: an ID token minted by providerId
// in the browser.
type ProviderRequest struct {
	ProviderID string `json:"providerId"`
	IDToken    string `json:"idToken" binding:"required"`
}

// Me returns the signed-in user, or null.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": h.auth.CurrentUser(c.Request.Context(), middleware.SessionID(c))})
}

// Provider completes a federated sign-in.
func (h *AuthHandler) Provider(c *gin.Context) {
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	res := h.auth.SignInWithProvider(c.Request.Context(), middleware.SessionID(c), req.ProviderID, req.IDToken)
	user, rerr := res.Unwrap()
	if rerr != nil {
		failureJSON(c, rerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SignOut forgets the session's user. Pages get redirected back home.
func (h *AuthHandler) SignOut(c *gin.Context) {
	res := h.auth.SignOut(c.Request.Context(), middleware.SessionID(c))
	if rerr := res.Err(); rerr != nil {
		failureJSON(c, rerr)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Events streams the session's sign-in state as server-sent events: the
// current state first, then one "auth" event per sign-in or sign-out. The
// subscription ends with the connection.
func (h *AuthHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	events, cancel := h.auth.Subscribe(ctx, middleware.SessionID(c))
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("auth event stream closed", zap.String("session", middleware.SessionID(c)))
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("auth", ev)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		}
	}
}
