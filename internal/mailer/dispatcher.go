package mailer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/abcde-dev/abcdecom/internal/telemetry/metrics"
	"github.com/abcde-dev/abcdecom/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultDelay = 4 * time.Second

var (
	ErrMissingFields      = errors.New("subject and body are required")
	ErrEmptyRecipientList = errors.New("recipient list is empty")
)

//go:generate mockgen -source=$GOFILE -destination=dispatcher_mocks_test.go -package=mailer_test

// Sender is the message transfer collaborator.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SleepFunc waits for d, returning early with ctx.Err() when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Summary reports one dispatch. FailedRecipients keeps the input order.
type Summary struct {
	Attempted        int
	Sent             int
	Failed           int
	FailedRecipients []string
}

// Dispatcher sends one message to many recipients, one at a time, in input order.
// A failed send is logged and counted, and never stops the remaining sends.
// After every send, including the last one, it waits for the configured delay.
type Dispatcher struct {
	sender         Sender
	delay          time.Duration
	sleep          SleepFunc
	metricsManager *metrics.Manager
}

type DispatcherOption func(*Dispatcher)

func WithSleepFunc(sleep SleepFunc) DispatcherOption {
	return func(d *Dispatcher) {
		d.sleep = sleep
	}
}

func NewDispatcher(
	sender Sender,
	delay time.Duration,
	metricsManager *metrics.Manager,
	opts ...DispatcherOption,
) *Dispatcher {
	if delay < 0 {
		delay = DefaultDelay
	}
	d := &Dispatcher{
		sender:         sender,
		delay:          delay,
		sleep:          sleepCtx,
		metricsManager: metricsManager,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DispatchOne sends the message to a single, trimmed address.
func (d *Dispatcher) DispatchOne(ctx context.Context, recipient, subject, body string) (Summary, error) {
	return d.Dispatch(ctx, []string{strings.TrimSpace(recipient)}, subject, body)
}

// Dispatch validates the input before any send. Cancelling ctx stops the dispatch
// before the next send; the summary then covers the sends done so far.
func (d *Dispatcher) Dispatch(ctx context.Context, recipients []string, subject, body string) (summary Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mailer.dispatch")
	defer func() {
		span.SetAttributes(
			attribute.Int("mail.attempted", summary.Attempted),
			attribute.Int("mail.sent", summary.Sent),
			attribute.Int("mail.failed", summary.Failed),
		)
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return summary, ErrMissingFields
	}
	if len(recipients) == 0 {
		return summary, ErrEmptyRecipientList
	}

	begin := time.Now()
	defer func() {
		if d.metricsManager != nil {
			d.metricsManager.HistMailDispatchDuration.Observe(time.Since(begin).Seconds())
		}
	}()

	log.Debugf("mail dispatch [%s] to %d recipients started", subject, len(recipients))
	for _, recipient := range recipients {
		if err := ctx.Err(); err != nil {
			log.Warnf("mail dispatch [%s] stopped after %d of %d: %s", subject, summary.Attempted, len(recipients), err)
			return summary, err
		}

		summary.Attempted++
		if sendErr := d.sender.Send(ctx, recipient, subject, body); sendErr != nil {
			log.Errorf("failed to send email to %s: %s", recipient, sendErr)
			summary.Failed++
			summary.FailedRecipients = append(summary.FailedRecipients, recipient)
			if d.metricsManager != nil {
				d.metricsManager.CounterMailsFailed.Inc()
			}
		} else {
			log.Tracef("email sent to %s", recipient)
			summary.Sent++
			if d.metricsManager != nil {
				d.metricsManager.CounterMailsSent.Inc()
			}
		}

		if err := d.sleep(ctx, d.delay); err != nil {
			log.Warnf("mail dispatch [%s] throttle wait interrupted: %s", subject, err)
			return summary, err
		}
	}

	log.Debugf(
		"mail dispatch [%s] done: attempted %d, sent %d, failed %d",
		subject, summary.Attempted, summary.Sent, summary.Failed,
	)
	return summary, nil
}
