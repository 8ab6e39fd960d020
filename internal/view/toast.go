package view

import (
	"sync"
	"time"
)

// DefaultToastDuration is how long a toast stays up.
const DefaultToastDuration = 2 * time.Second

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock schedules with the time package.
var RealClock Scheduler = realClock{}

// Toast is the single transient status line. A new message replaces the
// current one and restarts the dismiss timer; the previous timer is stopped
// first so it cannot hide the new message early.
type Toast struct {
	Role     string
	AriaLive string

	mu       sync.Mutex
	sched    Scheduler
	duration time.Duration
	message  string
	visible  bool
	timer    Timer
	gen      uint64
}

func newToast(sched Scheduler, d time.Duration) *Toast {
	if sched == nil {
		sched = RealClock
	}
	if d <= 0 {
		d = DefaultToastDuration
	}
	return &Toast{Role: "status", AriaLive: "polite", sched: sched, duration: d}
}

func (t *Toast) Show(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = msg
	t.visible = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = t.sched.AfterFunc(t.duration, func() { t.dismiss(gen) })
}

func (t *Toast) dismiss(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// a callback that lost the race with Stop belongs to an older message
	if gen != t.gen {
		return
	}
	t.visible = false
	t.timer = nil
}

// Stop cancels a pending dismiss, leaving the toast as it is.
func (t *Toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// DurationMS is the dismiss delay in milliseconds, for the rendered page.
func (t *Toast) DurationMS() int64 { return t.duration.Milliseconds() }
