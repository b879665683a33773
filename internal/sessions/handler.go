package sessions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/shared/metrics"
	"career-navigator/internal/shared/server/middleware"
	"career-navigator/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.login)
	rg.GET("/sessions/current", h.current)
	rg.DELETE("/sessions/current", h.logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`
	Messages  []Turn `json:"messages"`
}

func toResponse(s Session) sessionResponse {
	turns := s.Turns
	if turns == nil {
		turns = []Turn{}
	}
	return sessionResponse{
		SessionID: s.ID,
		Email:     s.Email,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		Messages:  turns,
	}
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Please enter both email and password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open session", nil)
		return
	}
	metrics.IncSessionsOpened()
	c.Set("sessionId", sess.ID)
	respond.JSON(c, http.StatusCreated, toResponse(sess))
}

func (h *Handler) current(c *gin.Context) {
	sess, err := h.Svc.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		WriteLookupError(c, err)
		return
	}
	respond.OK(c, toResponse(sess))
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), middleware.SessionIDFromContext(c)); err != nil {
		WriteLookupError(c, err)
		return
	}
	respond.NoContent(c)
}

// WriteLookupError maps session lookup failures to HTTP responses.
func WriteLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrExpired):
		respond.Error(c, http.StatusUnauthorized, "session_expired", "Session expired or not found; log in again", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Please log in first", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
	}
}
