package health

import (
	"testing"
	"time"
)

func TestStatusReportsUptime(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService("dev", "placeholder")
	svc.started = start
	svc.now = func() time.Time { return start.Add(90 * time.Second) }

	got := svc.Status()
	if !got.OK {
		t.Fatalf("expected ok status")
	}
	if got.UptimeSeconds != 90 {
		t.Fatalf("expected 90s uptime, got %d", got.UptimeSeconds)
	}
	if got.Env != "dev" || got.ExtractMode != "placeholder" {
		t.Fatalf("unexpected status %+v", got)
	}
}
