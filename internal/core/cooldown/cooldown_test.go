package cooldown

import (
	"testing"
	"time"
)

func TestCheckNoMarkIsReady(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	ready, remaining := Check("", 24*time.Hour, now)
	if !ready || remaining != 0 {
		t.Fatalf("expected ready with zero remaining, got %v %v", ready, remaining)
	}
}

func TestCheckCorruptMarkFailsOpen(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	ready, remaining := Check("not-a-timestamp", time.Hour, now)
	if !ready || remaining != 0 {
		t.Fatalf("expected fail-open, got %v %v", ready, remaining)
	}
}

func TestCheckWindowNotElapsed(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	mark := Mark(now.Add(-2 * time.Hour))

	ready, remaining := Check(mark, 3*time.Hour, now)
	if ready {
		t.Fatal("expected gate closed")
	}
	if remaining != time.Hour {
		t.Fatalf("expected 1h remaining, got %v", remaining)
	}
}

func TestCheckWindowElapsed(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	mark := Mark(now.Add(-25 * time.Hour))

	ready, remaining := Check(mark, 24*time.Hour, now)
	if !ready || remaining != 0 {
		t.Fatalf("expected ready, got %v %v", ready, remaining)
	}
}

func TestCheckAcceptsNaiveLegacyLayout(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	ready, _ := Check("2026-03-01T11:30:00.123456", time.Hour, now)
	if ready {
		t.Fatal("expected gate closed for recent naive timestamp")
	}

	ready, _ = Check("2026-02-27T11:30:00.123456", time.Hour, now)
	if !ready {
		t.Fatal("expected gate open for stale naive timestamp")
	}
}

func TestMarkRoundTrips(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	ready, _ := Check(Mark(now), time.Hour, now)
	if ready {
		t.Fatal("freshly marked gate should be closed")
	}
}
