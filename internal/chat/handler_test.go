package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/llm"
	"career-navigator/internal/sessions"
	"career-navigator/internal/shared/server/middleware"
)

func setupChatRouter(t *testing.T, advisor llm.Advisor) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessSvc := sessions.NewService(sessions.NewMemoryRepo(), time.Hour)
	sess, err := sessSvc.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	r := gin.New()
	r.Use(middleware.Session(sessSvc))
	NewHandler(NewService(sessSvc, advisor)).RegisterRoutes(r.Group("/api/v1"))
	return r, sess.ID
}

func TestPostMessage(t *testing.T) {
	r, sessionID := setupChatRouter(t, llm.AdvisorFunc(func(ctx context.Context, q string) string {
		return "echo: " + q
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"question":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionID)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got askResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Reply != "echo: hello" || len(got.Messages) != 3 {
		t.Fatalf("unexpected response %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil)
	req.Header.Set("X-Session-Id", sessionID)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	var listed struct {
		Messages []sessions.Turn `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Messages) != 3 || listed.Messages[2].Content != "echo: hello" {
		t.Fatalf("unexpected history %+v", listed.Messages)
	}
}

func TestPostMessageValidation(t *testing.T) {
	r, sessionID := setupChatRouter(t, &countingAdvisor{reply: "x"})
	for _, body := range []string{`{"question":"  "}`, `{`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-Id", sessionID)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, resp.Code)
		}
	}
}

func TestPostMessageRequiresSession(t *testing.T) {
	r, _ := setupChatRouter(t, &countingAdvisor{reply: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"question":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "not-a-session")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
