package analyses

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/shared/metrics"
	"career-navigator/internal/shared/server/middleware"
	"career-navigator/internal/shared/server/respond"
	"career-navigator/internal/shared/telemetry"
	"career-navigator/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// TextExtractor turns an uploaded file into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string, fileName string) (string, error)
}

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc  *Service
	Text TextExtractor
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, text TextExtractor) *Handler {
	return &Handler{Svc: svc, Text: text}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roles", h.listRoles)
	rg.POST("/analyses", h.analyze)
}

func (h *Handler) listRoles(c *gin.Context) {
	respond.OK(c, gin.H{"roles": toRoleResponses(h.Svc.Catalog.Roles())})
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.IncAnalysesRejected()
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "Resume file must be 10MB or smaller", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid form body", nil)
		return
	}

	role, err := h.Svc.LookupRole(c.PostForm("role"))
	if err != nil {
		metrics.IncAnalysesRejected()
		switch {
		case errors.Is(err, ErrRoleRequired):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Please select a job role.", nil)
		default:
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unknown job role", gin.H{"roles": h.Svc.Catalog.Names()})
		}
		return
	}
	c.Set("jobRole", role.Name)

	text, ok := h.resumeText(c)
	if !ok {
		return
	}
	if strings.TrimSpace(text) == "" {
		metrics.IncAnalysesRejected()
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeUnreadable, "Could not read your resume. Try a text-based PDF or .txt file.", nil)
		return
	}

	result := h.Svc.Analyze(text, role)
	metrics.IncAnalyses()
	metrics.ObserveMatchScore(result.Score)
	c.Set("matchScore", result.Score)

	respond.OK(c, toResponse(result))
}

// resumeText reads the uploaded file, or the pasted "text" field when no file was sent.
// Extraction failures degrade to empty text so the caller can ask for a re-upload.
func (h *Handler) resumeText(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if pasted := c.PostForm("text"); pasted != "" {
			return pasted, true
		}
		metrics.IncAnalysesRejected()
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", nil)
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return "", false
	}

	if h.Text == nil {
		return "", true
	}
	text, err := h.Text.ExtractText(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		telemetry.Warn("analysis.extract_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"session_id": middleware.SessionIDFromContext(c),
			"file_name":  util.DisplayFileName(fileHeader.Filename),
			"size_bytes": len(data),
			"error":      err.Error(),
		})
		return "", true
	}
	return text, true
}
