package timer

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

// mockNotifier collects notifications for testing.
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
	urgent   []string
}

func (m *mockNotifier) Notify(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockNotifier) NotifyUrgent(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urgent = append(m.urgent, msg)
	return nil
}

// instantTicks delivers ticks as fast as the countdown reads them.
func instantTicks(time.Duration) (<-chan time.Time, func()) {
	ch := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case ch <- time.Time{}:
			case <-done:
				return
			}
		}
	}()
	return ch, func() { close(done) }
}

// stalledTicks never ticks.
func stalledTicks(time.Duration) (<-chan time.Time, func()) {
	return make(chan time.Time), func() {}
}

func newCountdown(n domain.Notifier, opts ...Option) *Countdown {
	log := logger.New(logger.LevelOff, nil)
	return New(n, log, append([]Option{WithTickSource(instantTicks)}, opts...)...)
}

func TestCountdownNotifications(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		messages []string
	}{
		{
			name:     "three minutes",
			duration: 3 * time.Minute,
			messages: []string{
				"Boil pasta: 1 minute remaining.",
				"Boil pasta: almost done, 30 seconds left.",
			},
		},
		{
			name:     "five minutes",
			duration: 5 * time.Minute,
			messages: []string{
				"Boil pasta: 3 minutes remaining.",
				"Boil pasta: 1 minute remaining.",
				"Boil pasta: almost done, 30 seconds left.",
			},
		},
		{
			name:     "too short for reminders",
			duration: 40 * time.Second,
			messages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &mockNotifier{}
			if err := newCountdown(n).Run(context.Background(), "Boil pasta", tt.duration); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !reflect.DeepEqual(n.messages, tt.messages) {
				t.Fatalf("messages = %q, want %q", n.messages, tt.messages)
			}
			if want := []string{"Boil pasta is up."}; !reflect.DeepEqual(n.urgent, want) {
				t.Fatalf("urgent = %q, want %q", n.urgent, want)
			}
		})
	}
}

func TestCountdownCustomIntervals(t *testing.T) {
	n := &mockNotifier{}
	c := newCountdown(n,
		WithTickInterval(10*time.Second),
		WithReminderInterval(0),
		WithAlmostDoneThreshold(time.Minute),
	)
	if err := c.Run(context.Background(), "Rest dough", 10*time.Minute); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"Rest dough: almost done, 1 minute left."}
	if !reflect.DeepEqual(n.messages, want) {
		t.Fatalf("messages = %q, want %q", n.messages, want)
	}
}

func TestCountdownCancel(t *testing.T) {
	n := &mockNotifier{}
	c := newCountdown(n, WithTickSource(stalledTicks))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, "Simmer", time.Minute) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if len(n.urgent) != 0 {
		t.Fatalf("cancelled timer fired: %q", n.urgent)
	}
}

func TestCountdownRejectsUntimed(t *testing.T) {
	err := newCountdown(&mockNotifier{}).Run(context.Background(), "Serve", 0)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCountdownWallClock(t *testing.T) {
	n := &mockNotifier{}
	c := New(n, logger.New(logger.LevelOff, nil), WithTickInterval(5*time.Millisecond))
	if err := c.Run(context.Background(), "Toast", 20*time.Millisecond); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(n.urgent) != 1 {
		t.Fatalf("urgent = %q, want one fire", n.urgent)
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1 * time.Second, "1 second"},
		{45 * time.Second, "45 seconds"},
		{60 * time.Second, "1 minute"},
		{89 * time.Second, "1 minute"},
		{90 * time.Second, "2 minutes"},
		{10 * time.Minute, "10 minutes"},
	}
	for _, tt := range tests {
		if got := formatRemaining(tt.d); got != tt.want {
			t.Errorf("formatRemaining(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
