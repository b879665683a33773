package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	analysesTotal         atomic.Uint64
	analysesRejectedTotal atomic.Uint64
	sessionsOpenedTotal   atomic.Uint64
	chatRequestsTotal     atomic.Uint64
	adviceAttemptsTotal   atomic.Uint64
	adviceSucceededTotal  atomic.Uint64
	adviceExhaustedTotal  atomic.Uint64
	adviceErroredTotal    atomic.Uint64

	matchScore     = newHistogram([]float64{10, 25, 50, 75, 90, 100})
	adviceDuration = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAnalyses counts a completed gap analysis.
func IncAnalyses() { analysesTotal.Add(1) }

// IncAnalysesRejected counts an analysis request refused at the boundary.
func IncAnalysesRejected() { analysesRejectedTotal.Add(1) }

// IncSessionsOpened counts a login.
func IncSessionsOpened() { sessionsOpenedTotal.Add(1) }

// IncChatRequests counts a submitted chat question.
func IncChatRequests() { chatRequestsTotal.Add(1) }

// IncAdviceAttempts counts one HTTP attempt against the completion API.
func IncAdviceAttempts() { adviceAttemptsTotal.Add(1) }

// IncAdviceSucceeded counts an advice call that received a 200.
func IncAdviceSucceeded() { adviceSucceededTotal.Add(1) }

// IncAdviceExhausted counts an advice call that ran out of attempts.
func IncAdviceExhausted() { adviceExhaustedTotal.Add(1) }

// IncAdviceErrored counts an advice call aborted by a transport or decode error.
func IncAdviceErrored() { adviceErroredTotal.Add(1) }

// ObserveMatchScore records a skill match percentage.
func ObserveMatchScore(score int) {
	matchScore.Observe(float64(score))
}

// ObserveAdviceDurationMs records the wall time of one advice call in milliseconds.
func ObserveAdviceDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	adviceDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analyses_total", "Gap analyses completed", analysesTotal.Load())
	writeCounter(&buf, "analyses_rejected_total", "Analysis requests rejected before analysis", analysesRejectedTotal.Load())
	writeCounter(&buf, "sessions_opened_total", "Sessions opened", sessionsOpenedTotal.Load())
	writeCounter(&buf, "chat_requests_total", "Chat questions submitted", chatRequestsTotal.Load())
	writeCounter(&buf, "advice_attempts_total", "HTTP attempts against the completion API", adviceAttemptsTotal.Load())
	writeCounter(&buf, "advice_succeeded_total", "Advice calls answered with HTTP 200", adviceSucceededTotal.Load())
	writeCounter(&buf, "advice_exhausted_total", "Advice calls that exhausted retries", adviceExhaustedTotal.Load())
	writeCounter(&buf, "advice_errored_total", "Advice calls aborted by transport or decode errors", adviceErroredTotal.Load())
	writeHistogram(&buf, "analysis_match_score", "Skill match percentage", matchScore.Snapshot())
	writeHistogram(&buf, "advice_duration_ms", "Advice call duration in milliseconds", adviceDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe adds value to the first bucket whose upper bound covers it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
