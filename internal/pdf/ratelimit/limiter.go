// Package ratelimit enforces per-key request ceilings over two sliding
// windows, the trailing minute and the trailing hour. State is in-memory
// and per-process: when multiple worker processes run without shared
// state, each enforces its own ceiling, so the effective global ceiling
// is multiplied by the worker count. Provision configured ceilings
// accordingly.
package ratelimit

import (
	"sync"
	"time"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
)

// Result is the outcome of a single admission check. Limit, Remaining and
// Reset describe one window, the minute window normally and the hour
// window when the hourly ceiling denied the request, and feed the
// X-RateLimit-* headers as a consistent set.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // zero when allowed
	Reset      time.Time     // when the next slot in the reported window frees up
}

// Limiter tracks request timestamps per key. Denied requests are not
// recorded, so hammering a limited key never extends the penalty.
type Limiter struct {
	cfg domain.RateLimitConfig
	now func() time.Time

	mu      sync.Mutex
	windows map[string][]time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(cfg domain.RateLimitConfig, opts ...Option) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		windows: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check admits or denies one request for key, recording it when admitted.
func (l *Limiter) Check(key string) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.prune(key, now)

	minuteCut := now.Add(-time.Minute)
	minuteCount := 0
	for i := len(w) - 1; i >= 0 && w[i].After(minuteCut); i-- {
		minuteCount++
	}

	res := Result{Limit: l.cfg.RequestsPerMinute}

	if minuteCount >= l.cfg.RequestsPerMinute {
		oldest := w[len(w)-minuteCount]
		res.RetryAfter = oldest.Add(time.Minute).Sub(now)
		res.Reset = oldest.Add(time.Minute)
		return res
	}

	if len(w) >= l.cfg.RequestsPerHour {
		oldest := w[0]
		res.Limit = l.cfg.RequestsPerHour
		res.RetryAfter = oldest.Add(time.Hour).Sub(now)
		res.Reset = oldest.Add(time.Hour)
		return res
	}

	w = append(w, now)
	l.windows[key] = w

	res.Allowed = true
	res.Remaining = l.cfg.RequestsPerMinute - minuteCount - 1
	res.Reset = w[len(w)-1-minuteCount].Add(time.Minute)
	return res
}

// Forget drops all recorded state for key, used when a key is deleted.
func (l *Limiter) Forget(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// prune drops timestamps older than an hour. Must hold l.mu.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	w := l.windows[key]
	cut := now.Add(-time.Hour)

	i := 0
	for i < len(w) && !w[i].After(cut) {
		i++
	}
	if i > 0 {
		w = append(w[:0:0], w[i:]...)
		if len(w) == 0 {
			delete(l.windows, key)
		} else {
			l.windows[key] = w
		}
	}
	return w
}

// StartCleanup evicts idle keys on the given interval until the returned
// stop function is called. Keys whose entire window has aged out would
// otherwise linger in the map forever.
func (l *Limiter) StartCleanup(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				l.evictIdle()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}

func (l *Limiter) evictIdle() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key := range l.windows {
		l.prune(key, now)
	}
}
