package health

import (
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	svc := NewService(true, "gemini-test")
	start := svc.startedAt
	svc.now = func() time.Time { return start.Add(90 * time.Second) }

	got := svc.Status()
	if !got.OK || !got.AdviceConfigured || got.AdviceModel != "gemini-test" || got.UptimeSeconds != 90 {
		t.Fatalf("unexpected status %+v", got)
	}
}
