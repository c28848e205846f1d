package capability

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestProbeDetectsOnce(t *testing.T) {
	var calls atomic.Int32
	p := NewProbe(func() bool {
		calls.Add(1)
		return true
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !p.Present() {
				t.Error("Present() = false, want true")
			}
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("detector called %d times, want 1", n)
	}
}

func TestProbeNilDetector(t *testing.T) {
	if NewProbe(nil).Present() {
		t.Error("probe with nil detector should report absent")
	}
}

func TestStatic(t *testing.T) {
	if !Static(true).Present() {
		t.Error("Static(true).Present() = false")
	}
	if Static(false).Present() {
		t.Error("Static(false).Present() = true")
	}
}

func TestCivilTime(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    bool
	}{
		{"enabled", true, civilCompiledIn},
		{"disabled by config", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CivilTime(tt.enabled).Present(); got != tt.want {
				t.Errorf("CivilTime(%v).Present() = %v, want %v", tt.enabled, got, tt.want)
			}
		})
	}
}
