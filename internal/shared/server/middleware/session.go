package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/shared/server/respond"
)

const (
	sessionIDKey    = "sessionId"
	sessionIDHeader = "X-Session-Id"
)

// SessionLookup reports whether a session id refers to a live session.
type SessionLookup interface {
	Validate(ctx context.Context, sessionID string) error
}

// Route identifies a method and path pair that bypasses session checks.
type Route struct {
	Method string
	Path   string
}

// Session requires a live X-Session-Id on every request except the public routes.
func Session(lookup SessionLookup, public ...Route) gin.HandlerFunc {
	open := make(map[Route]struct{}, len(public))
	for _, r := range public {
		open[Route{Method: strings.ToUpper(r.Method), Path: r.Path}] = struct{}{}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if _, ok := open[Route{Method: c.Request.Method, Path: path}]; ok {
			c.Next()
			return
		}
		if _, ok := open[Route{Method: "*", Path: path}]; ok {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader(sessionIDHeader))
		if id == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Please log in first", nil)
			return
		}
		if lookup == nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Please log in first", nil)
			return
		}
		if err := lookup.Validate(c.Request.Context(), id); err != nil {
			respond.Error(c, http.StatusUnauthorized, "session_expired", "Session expired or not found; log in again", nil)
			return
		}

		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionIDFromContext fetches the session ID set by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
