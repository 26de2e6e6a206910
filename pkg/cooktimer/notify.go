package cooktimer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

// ErrUndeliverable marks a Notify failure that retrying cannot fix.
var ErrUndeliverable = errors.New("alert undeliverable")

// Alert is the message delivered when a cooking timer finishes.
type Alert struct {
	Title string
	Body  string

	// RecipeID and Mode identify which timer finished.
	RecipeID string
	Mode     Mode
}

// DefaultAlert returns the standard completion message.
func DefaultAlert() Alert {
	return Alert{
		Title: "Timer Complete!",
		Body:  "Your cooking timer has finished.",
	}
}

// Notifier delivers completion alerts to the cook.
type Notifier interface {
	// Notify delivers an alert. Errors are reported to the timer's
	// logger and never interrupt the timer.
	Notify(ctx context.Context, alert Alert) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, alert Alert) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, alert Alert) error {
	return f(ctx, alert)
}

// BellNotifier rings the terminal bell and prints the alert.
type BellNotifier struct {
	w    io.Writer
	bell bool
}

// NewBellNotifier creates a notifier writing to w. When bell is false the
// BEL character is omitted.
func NewBellNotifier(w io.Writer, bell bool) *BellNotifier {
	return &BellNotifier{w: w, bell: bell}
}

// Notify writes the alert.
func (b *BellNotifier) Notify(_ context.Context, alert Alert) error {
	prefix := ""
	if b.bell {
		prefix = "\a"
	}
	_, err := fmt.Fprintf(b.w, "%s\n*** %s ***\n%s\n", prefix, alert.Title, alert.Body)
	return err
}

// MultiNotifier fans an alert out to several notifiers concurrently. Every
// notifier is tried; the first error is returned.
type MultiNotifier []Notifier

// Notify delivers the alert to each notifier and waits for all of them.
func (m MultiNotifier) Notify(ctx context.Context, alert Alert) error {
	var g errgroup.Group
	for _, n := range m {
		g.Go(func() error {
			return n.Notify(ctx, alert)
		})
	}
	return g.Wait()
}

// Retry defaults.
const (
	DefaultRetryInitial    = 100 * time.Millisecond
	DefaultRetryMaxElapsed = 3 * time.Second
)

// RetryNotifier retries a flaky notifier with exponential backoff. Errors
// wrapping ErrUndeliverable stop the retries immediately.
type RetryNotifier struct {
	next       Notifier
	initial    time.Duration
	maxElapsed time.Duration
}

// NewRetryNotifier wraps next. Zero durations select the defaults.
func NewRetryNotifier(next Notifier, initial, maxElapsed time.Duration) *RetryNotifier {
	if initial <= 0 {
		initial = DefaultRetryInitial
	}
	if maxElapsed <= 0 {
		maxElapsed = DefaultRetryMaxElapsed
	}
	return &RetryNotifier{next: next, initial: initial, maxElapsed: maxElapsed}
}

func (r *RetryNotifier) newBackOff() backoff.BackOff {
	// BackOff implementations are stateful; always return a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initial
	bo.MaxElapsedTime = r.maxElapsed
	return bo
}

// Notify delivers the alert, retrying until it succeeds, fails permanently,
// the backoff gives up, or ctx ends.
func (r *RetryNotifier) Notify(ctx context.Context, alert Alert) error {
	return backoff.Retry(func() error {
		err := r.next.Notify(ctx, alert)
		if err != nil && errors.Is(err, ErrUndeliverable) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(r.newBackOff(), ctx))
}

// Compile-time interface satisfaction checks.
var (
	_ Notifier = NotifierFunc(nil)
	_ Notifier = (*BellNotifier)(nil)
	_ Notifier = MultiNotifier(nil)
	_ Notifier = (*RetryNotifier)(nil)
	_ Notifier = (*DesktopNotifier)(nil)
)
