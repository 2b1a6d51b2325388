package bookingsvc

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 1, h, m, 0, 0, time.UTC)
}

func TestQuote_NoDriver(t *testing.T) {
	hours, total := Quote(at(10, 0), at(13, 0), 100, false)
	if hours != 3 || total != 300 {
		t.Fatalf("got hours=%d total=%v; want 3 300", hours, total)
	}
}

func TestQuote_WithDriver(t *testing.T) {
	hours, total := Quote(at(10, 0), at(13, 0), 100, true)
	if hours != 3 || total != 1500 {
		t.Fatalf("got hours=%d total=%v; want 3 1500", hours, total)
	}
}

func TestQuote_PartialHourRoundsUp(t *testing.T) {
	hours, total := Quote(at(10, 0), at(12, 30), 100, false)
	if hours != 3 || total != 300 {
		t.Fatalf("got hours=%d total=%v; want 3 300", hours, total)
	}
}

func TestQuote_NonPositiveInterval(t *testing.T) {
	if hours, total := Quote(at(13, 0), at(10, 0), 100, false); hours != 0 || total != 0 {
		t.Fatalf("reversed interval: got hours=%d total=%v; want 0 0", hours, total)
	}
	if hours, total := Quote(at(10, 0), at(10, 0), 100, true); hours != 0 || total != 0 {
		t.Fatalf("empty interval: got hours=%d total=%v; want 0 0", hours, total)
	}
}
