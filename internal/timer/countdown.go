// Package timer counts down recipe step timers and notifies the user as
// they run.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

// Option configures the countdown.
type Option func(*Countdown)

// WithTickInterval sets how much time each tick counts off.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.tick = d
	}
}

// WithReminderInterval sets how often a running timer sends a
// "remaining" reminder. Zero disables reminders.
func WithReminderInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.reminderInterval = d
	}
}

// WithAlmostDoneThreshold sets how close to expiry a timer must be to
// trigger the "almost done" warning.
func WithAlmostDoneThreshold(d time.Duration) Option {
	return func(c *Countdown) {
		c.almostDone = d
	}
}

// WithTickSource replaces the wall-clock ticker. src is called once per
// run and returns the tick channel and a stop function.
func WithTickSource(src func(interval time.Duration) (<-chan time.Time, func())) Option {
	return func(c *Countdown) {
		c.ticks = src
	}
}

// Countdown runs step timers one at a time.
type Countdown struct {
	notifier         domain.Notifier
	log              *logger.Logger
	tick             time.Duration
	reminderInterval time.Duration
	almostDone       time.Duration
	ticks            func(time.Duration) (<-chan time.Time, func())
}

// New creates a countdown with the given dependencies and options.
func New(notifier domain.Notifier, log *logger.Logger, opts ...Option) *Countdown {
	c := &Countdown{
		notifier:         notifier,
		log:              log,
		tick:             1 * time.Second,
		reminderInterval: 2 * time.Minute,
		almostDone:       30 * time.Second,
		ticks:            wallTicks,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func wallTicks(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// run is the state of one timer.
type run struct {
	label        string
	duration     time.Duration
	remaining    time.Duration
	warnedAlmost bool
	lastReminder time.Duration // elapsed time at the last reminder
}

// Run counts d down for label and blocks until the timer fires or ctx is
// cancelled. A cancelled run returns the context error.
func (c *Countdown) Run(ctx context.Context, label string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("timer %q has no duration: %w", label, domain.ErrInvalidInput)
	}

	ticks, stop := c.ticks(c.tick)
	defer stop()

	r := &run{label: label, duration: d, remaining: d}
	c.log.Info("timer %s started (%s)", label, d)

	for {
		select {
		case <-ctx.Done():
			c.log.Info("timer %s stopped with %s left", label, r.remaining)
			return ctx.Err()
		case <-ticks:
			if c.advance(ctx, r) {
				return nil
			}
		}
	}
}

// advance counts one tick off r and sends whatever notification is due.
// It reports whether the timer fired.
func (c *Countdown) advance(ctx context.Context, r *run) bool {
	r.remaining -= c.tick

	if r.remaining <= 0 {
		r.remaining = 0
		c.log.Debug("timer %s fired", r.label)
		if err := c.notifier.NotifyUrgent(ctx, fmt.Sprintf("%s is up.", r.label)); err != nil {
			c.log.Error("timer: notifying fire: %v", err)
		}
		return true
	}

	elapsed := r.duration - r.remaining

	// Once, when remaining crosses the threshold.
	if !r.warnedAlmost && r.remaining <= c.almostDone && r.duration > c.almostDone*2 {
		r.warnedAlmost = true
		r.lastReminder = elapsed
		msg := fmt.Sprintf("%s: almost done, %s left.", r.label, formatRemaining(r.remaining))
		if err := c.notifier.Notify(ctx, msg); err != nil {
			c.log.Error("timer: almost-done notify: %v", err)
		}
		return false
	}

	if c.reminderInterval > 0 && r.duration > c.reminderInterval && elapsed-r.lastReminder >= c.reminderInterval {
		r.lastReminder = elapsed
		msg := fmt.Sprintf("%s: %s remaining.", r.label, formatRemaining(r.remaining))
		if err := c.notifier.Notify(ctx, msg); err != nil {
			c.log.Error("timer: reminder notify: %v", err)
		}
	}
	return false
}

// formatRemaining returns a human-friendly duration for reminders.
// Rounds to the nearest minute once there's at least 1 minute left.
func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	totalSec := int(d.Seconds())
	if totalSec < 60 {
		if totalSec == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", totalSec)
	}
	m := (totalSec + 30) / 60
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}
