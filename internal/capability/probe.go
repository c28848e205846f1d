package capability

import "sync"

// Prober reports whether an optional capability is available.
type Prober interface {
	Present() bool
}

// Probe runs a detector at most once and remembers the answer.
type Probe struct {
	once    sync.Once
	detect  func() bool
	present bool
}

// NewProbe returns a Probe backed by detect. A nil detect reports absent.
func NewProbe(detect func() bool) *Probe {
	return &Probe{detect: detect}
}

// Present evaluates the detector on first call and returns the cached result after.
func (p *Probe) Present() bool {
	p.once.Do(func() {
		if p.detect != nil {
			p.present = p.detect()
		}
	})
	return p.present
}

// Static is a Prober with a fixed answer.
type Static bool

// Present returns the fixed answer.
func (s Static) Present() bool {
	return bool(s)
}

// CivilTime reports the civil date/time conversions as present when they are
// compiled in and enabled is true. Build with -tags nocivil to compile them out.
func CivilTime(enabled bool) *Probe {
	return NewProbe(func() bool {
		return civilCompiledIn && enabled
	})
}

// CivilCompiledIn reports whether the binary was built with civil conversions.
func CivilCompiledIn() bool {
	return civilCompiledIn
}
