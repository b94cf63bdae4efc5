package time

import (
	"testing"
	"time"

	"qualifiers/internal/platform/testkit"
)

func TestNowIsUTC(t *testing.T) {
	t.Parallel()

	if Now().Location() != time.UTC {
		t.Fatalf("Now should be UTC")
	}
}

func TestSince_UsesSeam(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	testkit.Swap(t, &Now, func() time.Time { return start.Add(1500 * time.Millisecond) })

	if got := Since(start); got != 1500*time.Millisecond {
		t.Fatalf("Since = %v", got)
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	if Ptr(time.Time{}) != nil {
		t.Fatalf("zero time should be nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr lost value")
	}
}
