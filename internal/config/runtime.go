package config

import "sync"

// RuntimeSettings holds values that can change while the window is open.
type RuntimeSettings struct {
	mu           sync.RWMutex
	fpsLimit     int
	showProfiler bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: DefaultFPS,
}

func clampFPS(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped.
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap, clamped to 0..1000.
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.fpsLimit = clampFPS(limit)
}

func GetShowProfiler() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showProfiler
}

func SetShowProfiler(show bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showProfiler = show
}

// ToggleShowProfiler flips the overlay flag and returns the new value.
func ToggleShowProfiler() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showProfiler = !globalRuntimeSettings.showProfiler
	return globalRuntimeSettings.showProfiler
}
