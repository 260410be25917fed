// Package ratelimit implements a fixed-window request counter keyed by
// client identity. It is an approximate limiter: a client can burst up to
// twice the limit across a window boundary. That trade-off is accepted for
// simplicity and is part of the contract, pinned by tests.
package ratelimit

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Config bounds one identifier to MaxRequests per Window.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Result of a single Check call. When Allowed is false, ResetTime lets the
// caller compute a retry-after duration.
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter is the in-memory rate-limit store. Each entry's (count, resetTime)
// pair is one atomic unit under the store mutex; readers never observe a
// count incremented against a stale window.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
	cron    *cron.Cron
}

func New() *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Check records one request for identifier and reports whether it is within
// the window budget. The first request for an identifier, or any request
// observed after the stored window expired, starts a fresh window.
func (l *Limiter) Check(identifier string, cfg Config) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[identifier]

	if !ok || now.After(e.resetTime) {
		reset := now.Add(cfg.Window)
		l.entries[identifier] = &entry{count: 1, resetTime: reset}
		return Result{Allowed: true, Remaining: cfg.MaxRequests - 1, ResetTime: reset}
	}

	if e.count >= cfg.MaxRequests {
		return Result{Allowed: false, Remaining: 0, ResetTime: e.resetTime}
	}

	e.count++
	return Result{Allowed: true, Remaining: cfg.MaxRequests - e.count, ResetTime: e.resetTime}
}

// Sweep removes expired entries to bound memory. Expired entries are also
// replaced opportunistically by Check, so sweeping is purely hygiene.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, e := range l.entries {
		if now.After(e.resetTime) {
			delete(l.entries, id)
		}
	}
}

// Len reports the number of tracked identifiers.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// StartSweeper schedules Sweep at the given interval.
func (l *Limiter) StartSweeper(interval time.Duration) error {
	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), l.Sweep)
	if err != nil {
		return fmt.Errorf("schedule rate-limit sweep: %w", err)
	}

	c.Start()
	l.cron = c
	slog.Info("rate-limit sweeper started", "interval", interval.String())
	return nil
}

// StopSweeper halts the periodic sweep. Safe to call without a prior
// StartSweeper.
func (l *Limiter) StopSweeper() {
	if l.cron != nil {
		l.cron.Stop()
		l.cron = nil
	}
}
