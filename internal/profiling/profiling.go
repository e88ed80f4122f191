package profiling

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings, reset at the top of every frame.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("hud.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current frame's totals.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current frame's totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every section whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// Section is one named timing.
type Section struct {
	Name     string
	Duration time.Duration
}

func (s Section) String() string {
	return fmt.Sprintf("%s:%sms", s.Name, formatMs(s.Duration))
}

// Top returns the n slowest sections of the current frame, slowest first.
// Ties are broken by name so the order is stable.
func Top(n int) []Section {
	ss := Snapshot()
	list := make([]Section, 0, len(ss))
	for k, v := range ss {
		list = append(list, Section{Name: k, Duration: v})
	}
	slices.SortFunc(list, func(a, b Section) int {
		if c := cmp.Compare(b.Duration, a.Duration); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if n < len(list) {
		list = list[:max(n, 0)]
	}
	return list
}

// TopN formats the n slowest sections, e.g. "hud.Render:4.2ms, app.Swap:2ms".
func TopN(n int) string {
	top := Top(n)
	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0")
}
