package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("initial time = %v, want %v", mock.Now(), start)
	}

	if got := mock.Advance(90 * time.Second); !got.Equal(start.Add(90 * time.Second)) {
		t.Errorf("Advance returned %v", got)
	}

	earlier := start.Add(-time.Hour)
	mock.SetTime(earlier)
	if !mock.Now().Equal(earlier) {
		t.Errorf("after SetTime = %v, want %v", mock.Now(), earlier)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(200 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("time after concurrent advances = %v, want %v", mock.Now(), want)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}

// TestFrameClockPrimes verifies the first reading yields no delta
func TestFrameClockPrimes(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewFrameClock(0)

	if _, ok := clock.Delta(mock.Now()); ok {
		t.Fatal("first Delta reported ok")
	}
	if dt, ok := clock.Delta(mock.Advance(16 * time.Millisecond)); !ok || dt != 16*time.Millisecond {
		t.Errorf("Delta = %v, %v, want 16ms, true", dt, ok)
	}

	clock.Reset()
	if _, ok := clock.Delta(mock.Advance(time.Hour)); ok {
		t.Error("Delta after Reset reported ok")
	}
	if dt, _ := clock.Delta(mock.Advance(time.Millisecond)); dt != time.Millisecond {
		t.Errorf("Delta after re-prime = %v, want 1ms", dt)
	}
}

func TestFrameClockBounds(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	clock := NewFrameClock(100 * time.Millisecond)
	clock.Delta(mock.Now())

	if dt, _ := clock.Delta(mock.Advance(5 * time.Second)); dt != 100*time.Millisecond {
		t.Errorf("stalled frame delta = %v, want capped 100ms", dt)
	}

	mock.SetTime(mock.Now().Add(-time.Second))
	if dt, ok := clock.Delta(mock.Now()); !ok || dt != 0 {
		t.Errorf("backwards delta = %v, %v, want 0, true", dt, ok)
	}
}
