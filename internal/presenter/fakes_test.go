package presenter

import (
	"fmt"
	"sync"
	"time"
)

type fakeTimer struct {
	clock   *fakeClock
	due     time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, due: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and fires due timers outside the clock lock.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.due.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeSurface struct {
	mu        sync.Mutex
	events    []string
	visible   map[uint64]OverlayView
	maxShown  int
	showErr   error
	removeErr error
	removes   int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{visible: make(map[uint64]OverlayView)}
}

func (s *fakeSurface) Show(view OverlayView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.showErr != nil {
		return s.showErr
	}
	s.visible[view.ID] = view
	s.maxShown = max(s.maxShown, len(s.visible))
	s.events = append(s.events, fmt.Sprintf("show:%d", view.ID))
	return nil
}

func (s *fakeSurface) Remove(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removes++
	delete(s.visible, id)
	s.events = append(s.events, fmt.Sprintf("remove:%d", id))
	return s.removeErr
}

func (s *fakeSurface) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *fakeSurface) Removes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removes
}

type fakeHost struct {
	mu            sync.Mutex
	registrations []string
	renewals      int
}

func (h *fakeHost) OpenRegistration(maskedNumber string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.registrations = append(h.registrations, maskedNumber)
}

func (h *fakeHost) OpenRenewal() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renewals++
}
