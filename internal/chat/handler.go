package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/sessions"
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
	rg.GET("/chat/messages", h.list)
	rg.POST("/chat/messages", h.ask)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Reply    string          `json:"reply"`
	Messages []sessions.Turn `json:"messages"`
}

func (h *Handler) list(c *gin.Context) {
	turns, err := h.Svc.History(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		sessions.WriteLookupError(c, err)
		return
	}
	respond.OK(c, gin.H{"messages": turns})
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	ex, err := h.Svc.Ask(c.Request.Context(), middleware.SessionIDFromContext(c), req.Question)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) || errors.Is(err, ErrQuestionTooLong) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		sessions.WriteLookupError(c, err)
		return
	}
	c.Set("adviceOutcome", string(ex.Outcome))
	respond.OK(c, askResponse{Reply: ex.Reply, Messages: ex.Turns})
}
