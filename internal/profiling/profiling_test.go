package profiling

import (
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopN(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	record("hud.Render", 4200*time.Microsecond)
	record("app.Swap", 2*time.Millisecond)
	record("hud.Labels", 500*time.Microsecond)
	record("hud.Render", 0)

	if got, want := TopN(2), "hud.Render:4.2ms, app.Swap:2ms"; got != want {
		t.Fatalf("TopN(2) = %q, want %q", got, want)
	}
	if got := len(Top(10)); got != 3 {
		t.Fatalf("Top(10) returned %d sections", got)
	}
	if got := TopN(0); got != "" {
		t.Fatalf("TopN(0) = %q", got)
	}
	if got, want := SumWithPrefix("hud."), 4700*time.Microsecond; got != want {
		t.Fatalf("SumWithPrefix = %v, want %v", got, want)
	}
}

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	stop := Track("test.Sleep")
	time.Sleep(time.Millisecond)
	stop()

	if Snapshot()["test.Sleep"] < time.Millisecond {
		t.Fatalf("tracked duration too short: %v", Snapshot()["test.Sleep"])
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Fatal("ResetFrame left entries behind")
	}
}

func BenchmarkTrack(b *testing.B) {
	defer ResetFrame()
	for i := 0; i < b.N; i++ {
		Track("bench")()
	}
}
