package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"career-navigator/internal/llm"
	"career-navigator/internal/shared/metrics"
	"career-navigator/internal/shared/util"
)

const (
	DefaultModel   = "gemini-2.5-flash-preview-05-20"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	maxAttempts    = 5
	maxLogLength   = 200
	defaultBackoff = time.Second
	defaultTimeout = 60 * time.Second
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	BackoffBase time.Duration
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// Client asks the Gemini generateContent endpoint for career advice.
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	backoffBase time.Duration
	httpClient  *http.Client
	logger      *zap.Logger

	// Sleep waits between attempts; it returns early with ctx's error on cancellation.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewClient builds a Client. An empty API key is accepted; Ask then answers without calling out.
func NewClient(opts Options) *Client {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	backoff := opts.BackoffBase
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:      strings.TrimSpace(opts.APIKey),
		model:       model,
		baseURL:     baseURL,
		backoffBase: backoff,
		httpClient:  httpClient,
		logger:      logger,
		Sleep:       util.WaitFor,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Ask sends question with the fixed system instruction and returns a display string.
// It never fails: missing credentials, HTTP failures and malformed replies all become messages.
func (c *Client) Ask(ctx context.Context, question string) string {
	return c.Answer(ctx, question).Text
}

// Answer is Ask with the terminal outcome and attempt count attached.
func (c *Client) Answer(ctx context.Context, question string) llm.Answer {
	if c.apiKey == "" {
		c.logger.Warn("advice request skipped", zap.String("reason", "missing api key"))
		return llm.Answer{Text: missingKeyMessage, Outcome: llm.OutcomeSkipped}
	}

	started := time.Now()
	defer func() {
		metrics.ObserveAdviceDurationMs(float64(time.Since(started).Milliseconds()))
	}()

	payload, err := json.Marshal(buildRequest(question, SystemInstruction))
	if err != nil {
		return c.errored(err, 0)
	}

	var (
		lastStatus string
		lastBody   []byte
		haveReply  bool
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		metrics.IncAdviceAttempts()
		status, body, err := c.post(ctx, payload)
		if err != nil {
			return c.errored(err, attempt)
		}
		haveReply = true
		lastStatus = strconv.Itoa(status)
		lastBody = body

		if status == http.StatusOK {
			return c.succeeded(body, attempt)
		}

		delay := c.backoffBase * time.Duration(1<<(attempt-1))
		c.logger.Warn("advice attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("status", status),
			zap.Duration("backoff", delay),
			zap.String("body_preview", util.TruncateForLog(string(body), maxLogLength)),
		)
		if err := c.Sleep(ctx, delay); err != nil {
			return c.errored(err, attempt)
		}
	}

	metrics.IncAdviceExhausted()
	status, detail := "N/A", noBodyMessage
	if haveReply {
		status = lastStatus
		detail = string(lastBody)
	}
	c.logger.Error("advice retries exhausted",
		zap.String("status", status),
		zap.Int("attempts", maxAttempts),
	)
	return llm.Answer{
		Text:     fmt.Sprintf(exhaustedFormat, status, detail),
		Outcome:  llm.OutcomeExhausted,
		Attempts: maxAttempts,
	}
}

func (c *Client) post(ctx context.Context, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, redactKey(err, c.apiKey)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

func (c *Client) succeeded(body []byte, attempt int) llm.Answer {
	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return c.errored(fmt.Errorf("decode response: %w", err), attempt)
	}
	metrics.IncAdviceSucceeded()
	text, ok := parsed.firstText()
	c.logger.Info("advice answered",
		zap.Int("attempt", attempt),
		zap.Bool("has_text", ok),
		zap.Int("response_length", len(text)),
	)
	if !ok {
		text = noResponseMessage
	}
	return llm.Answer{Text: text, Outcome: llm.OutcomeSucceeded, Attempts: attempt}
}

func (c *Client) errored(err error, attempt int) llm.Answer {
	metrics.IncAdviceErrored()
	c.logger.Error("advice request errored", zap.Int("attempt", attempt), zap.Error(err))
	return llm.Answer{
		Text:     fmt.Sprintf(transportErrFormat, err),
		Outcome:  llm.OutcomeErrored,
		Attempts: attempt,
	}
}

// redactKey strips the credential from url errors so it never reaches the display string.
func redactKey(err error, key string) error {
	msg := err.Error()
	redacted := strings.ReplaceAll(msg, url.QueryEscape(key), "REDACTED")
	redacted = strings.ReplaceAll(redacted, key, "REDACTED")
	if redacted == msg {
		return err
	}
	return errors.New(redacted)
}

var (
	_ llm.Advisor  = (*Client)(nil)
	_ llm.Answerer = (*Client)(nil)
)
