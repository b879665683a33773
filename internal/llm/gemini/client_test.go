package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"career-navigator/internal/llm"
)

type recordedSleep struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordedSleep) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	return ctx.Err()
}

type scriptedServer struct {
	mu       sync.Mutex
	statuses []int
	bodies   []string
	calls    int
	requests []generateRequest
	paths    []string
}

func (s *scriptedServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, _ := io.ReadAll(r.Body)
	var req generateRequest
	_ = json.Unmarshal(raw, &req)
	s.requests = append(s.requests, req)
	s.paths = append(s.paths, r.URL.RequestURI())

	i := s.calls
	if i >= len(s.statuses) {
		i = len(s.statuses) - 1
	}
	s.calls++
	w.WriteHeader(s.statuses[i])
	_, _ = io.WriteString(w, s.bodies[i])
}

func newTestClient(t *testing.T, srv *httptest.Server, key string) (*Client, *recordedSleep) {
	t.Helper()
	c := NewClient(Options{
		APIKey:      key,
		Model:       "test-model",
		BaseURL:     srv.URL + "/",
		BackoffBase: time.Millisecond,
		HTTPClient:  srv.Client(),
	})
	rec := &recordedSleep{}
	c.Sleep = rec.sleep
	return c, rec
}

const okBody = `{"candidates":[{"content":{"parts":[{"text":"Learn Go."}]}}]}`

func TestAskSuccess(t *testing.T) {
	script := &scriptedServer{statuses: []int{200}, bodies: []string{okBody}}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, rec := newTestClient(t, srv, "secret")
	got := c.Ask(context.Background(), "How do I become a backend engineer?")
	if got != "Learn Go." {
		t.Fatalf("unexpected answer %q", got)
	}
	if script.calls != 1 || len(rec.delays) != 0 {
		t.Fatalf("expected one call and no sleeps, got %d calls %v", script.calls, rec.delays)
	}
	if script.paths[0] != "/v1beta/models/test-model:generateContent?key=secret" {
		t.Fatalf("unexpected request path %q", script.paths[0])
	}
	req := script.requests[0]
	if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "How do I become a backend engineer?" {
		t.Fatalf("unexpected contents %+v", req.Contents)
	}
	if req.SystemInstruction.Parts[0].Text != SystemInstruction {
		t.Fatalf("unexpected system instruction %+v", req.SystemInstruction)
	}
}

func TestAskRetriesThenSucceeds(t *testing.T) {
	script := &scriptedServer{
		statuses: []int{503, 429, 200},
		bodies:   []string{"busy", "slow down", okBody},
	}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, rec := newTestClient(t, srv, "secret")
	if got := c.Ask(context.Background(), "q"); got != "Learn Go." {
		t.Fatalf("unexpected answer %q", got)
	}
	if script.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", script.calls)
	}
	want := []time.Duration{time.Millisecond, 2 * time.Millisecond}
	if len(rec.delays) != len(want) || rec.delays[0] != want[0] || rec.delays[1] != want[1] {
		t.Fatalf("unexpected delays %v", rec.delays)
	}
}

func TestAskExhaustsAfterFiveAttempts(t *testing.T) {
	script := &scriptedServer{
		statuses: []int{500, 500, 502, 503, 504, 200},
		bodies:   []string{"a", "b", "c", "d", "gateway timeout", okBody},
	}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, rec := newTestClient(t, srv, "secret")
	core, logs := observer.New(zapcore.DebugLevel)
	c.logger = zap.New(core)
	got := c.Ask(context.Background(), "q")
	want := "API call failed with status: 504. Error: gateway timeout"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if script.calls != maxAttempts {
		t.Fatalf("expected %d calls, got %d", maxAttempts, script.calls)
	}
	wantDelays := []time.Duration{1, 2, 4, 8, 16}
	if len(rec.delays) != len(wantDelays) {
		t.Fatalf("expected %d sleeps, got %v", len(wantDelays), rec.delays)
	}
	for i, units := range wantDelays {
		if rec.delays[i] != units*time.Millisecond {
			t.Fatalf("delay %d: expected %v, got %v", i, units*time.Millisecond, rec.delays[i])
		}
	}
	if n := logs.FilterMessage("advice attempt failed").Len(); n != maxAttempts {
		t.Fatalf("expected %d attempt logs, got %d", maxAttempts, n)
	}
	if logs.FilterMessage("advice retries exhausted").Len() != 1 {
		t.Fatalf("expected an exhaustion log entry")
	}
}

func TestAskWithoutKeyMakesNoCalls(t *testing.T) {
	script := &scriptedServer{statuses: []int{200}, bodies: []string{okBody}}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, _ := newTestClient(t, srv, "   ")
	if got := c.Ask(context.Background(), "q"); got != "API Key not provided." {
		t.Fatalf("unexpected answer %q", got)
	}
	if script.calls != 0 {
		t.Fatalf("expected no network calls, got %d", script.calls)
	}
}

func TestAskMissingFieldsFallBack(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{}]}`,
		`{"candidates":[{"content":{}}]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{}]}}]}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			script := &scriptedServer{statuses: []int{200}, bodies: []string{body}}
			srv := httptest.NewServer(script)
			defer srv.Close()

			c, _ := newTestClient(t, srv, "secret")
			if got := c.Ask(context.Background(), "q"); got != "Sorry, could not generate a response." {
				t.Fatalf("unexpected answer %q", got)
			}
		})
	}
}

func TestAskUnparseableSuccessBody(t *testing.T) {
	script := &scriptedServer{statuses: []int{200}, bodies: []string{"<html>oops</html>"}}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, _ := newTestClient(t, srv, "secret")
	got := c.Ask(context.Background(), "q")
	if !strings.HasPrefix(got, "An error occurred while connecting to the AI assistant: ") {
		t.Fatalf("unexpected answer %q", got)
	}
	if script.calls != 1 {
		t.Fatalf("expected no retry after a decode error, got %d calls", script.calls)
	}
}

func TestAskTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, rec := newTestClient(t, srv, "secret")
	srv.Close()

	got := c.Ask(context.Background(), "q")
	if !strings.HasPrefix(got, "An error occurred while connecting to the AI assistant: ") {
		t.Fatalf("unexpected answer %q", got)
	}
	if strings.Contains(got, "secret") {
		t.Fatalf("api key leaked into message: %q", got)
	}
	if len(rec.delays) != 0 {
		t.Fatalf("transport errors must not be retried, got sleeps %v", rec.delays)
	}
}

func TestAskCancelledDuringBackoff(t *testing.T) {
	script := &scriptedServer{statuses: []int{500}, bodies: []string{"down"}}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, _ := newTestClient(t, srv, "secret")
	ctx, cancel := context.WithCancel(context.Background())
	c.Sleep = func(context.Context, time.Duration) error {
		cancel()
		return context.Canceled
	}
	got := c.Ask(ctx, "q")
	if got != "An error occurred while connecting to the AI assistant: context canceled" {
		t.Fatalf("unexpected answer %q", got)
	}
	if script.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", script.calls)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{APIKey: "k"})
	if c.Model() != DefaultModel {
		t.Fatalf("expected default model, got %q", c.Model())
	}
	if !strings.HasPrefix(c.endpoint(), DefaultBaseURL+"/v1beta/models/"+DefaultModel+":generateContent?key=") {
		t.Fatalf("unexpected endpoint %q", c.endpoint())
	}
}

func TestAnswerReportsOutcome(t *testing.T) {
	script := &scriptedServer{statuses: []int{429, 200}, bodies: []string{"quota", okBody}}
	srv := httptest.NewServer(script)
	defer srv.Close()

	c, _ := newTestClient(t, srv, "secret")
	ans := llm.Consult(context.Background(), c, "q")
	if ans.Outcome != llm.OutcomeSucceeded || ans.Attempts != 2 || ans.Text != "Learn Go." {
		t.Fatalf("unexpected answer %+v", ans)
	}

	noKey, _ := newTestClient(t, srv, "")
	if got := noKey.Answer(context.Background(), "q"); got.Outcome != llm.OutcomeSkipped || got.Attempts != 0 {
		t.Fatalf("unexpected answer without key %+v", got)
	}
}
