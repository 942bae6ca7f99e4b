package rainbow

import (
	"sync"
)

// Locked guards a Rainbow shared between goroutines.
type Locked struct {
	mu sync.RWMutex
	r  *Rainbow
}

// NewLocked wraps r. The caller must not use r directly afterwards.
func NewLocked(r *Rainbow) *Locked {
	return &Locked{r: r}
}

func (l *Locked) ColorAt(number float64) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.r.ColorAt(number)
}

func (l *Locked) RGBAt(number float64) RGB {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.r.RGBAt(number)
}

func (l *Locked) SetSpectrum(spectrum []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.SetSpectrum(spectrum)
}

func (l *Locked) SetNumberRange(min float64, max float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.SetNumberRange(min, max)
}

func (l *Locked) Spectrum() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.r.Spectrum()
}

func (l *Locked) NumberRange() (float64, float64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.r.NumberRange()
}

// Snapshot returns the spectrum and range read under a single lock.
func (l *Locked) Snapshot() ([]string, float64, float64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	min, max := l.r.NumberRange()
	return l.r.Spectrum(), min, max
}

// Read calls fn with the read lock held. fn must not mutate r.
func (l *Locked) Read(fn func(r *Rainbow)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.r)
}
