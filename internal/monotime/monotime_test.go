package monotime

import (
	"testing"
	"time"
)

func TestNowIsMonotonic(t *testing.T) {
	prev := Now()
	for i := 0; i < 1000; i++ {
		cur := Now()
		if cur < prev {
			t.Fatalf("clock went backwards: %v then %v", prev, cur)
		}
		prev = cur
	}
}

func TestNowAdvances(t *testing.T) {
	start := Now()
	time.Sleep(5 * time.Millisecond)
	if elapsed := Now() - start; elapsed < 5*time.Millisecond {
		t.Errorf("expected at least 5ms to pass, got %v", elapsed)
	}
}

func TestTicksToDuration(t *testing.T) {
	type testCase struct {
		Ticks  uint64
		Freq   uint64
		Output time.Duration
	}
	goldenTests := []testCase{
		{Ticks: 0, Freq: 10_000_000, Output: 0},
		{Ticks: 10_000_000, Freq: 10_000_000, Output: time.Second},
		{Ticks: 15_000_000, Freq: 10_000_000, Output: 1500 * time.Millisecond},
		{Ticks: 1, Freq: 10_000_000, Output: 100 * time.Nanosecond},
		// 10 days of uptime at 10MHz, 1e9*ticks would overflow
		{Ticks: 10 * 24 * 60 * 60 * 10_000_000, Freq: 10_000_000, Output: 10 * 24 * time.Hour},
		{Ticks: 123, Freq: 0, Output: 0},
	}
	for _, test := range goldenTests {
		if res := ticksToDuration(test.Ticks, test.Freq); res != test.Output {
			t.Errorf("ticksToDuration(%d, %d) returned %v but expected %v", test.Ticks, test.Freq, res, test.Output)
		}
	}
}
