package notifykit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/notifykit/notifykit/pkg/channel"
	"github.com/notifykit/notifykit/pkg/decorator"
	"github.com/notifykit/notifykit/pkg/logger"
	"github.com/notifykit/notifykit/pkg/manager"
	"github.com/notifykit/notifykit/pkg/roster"
	"github.com/notifykit/notifykit/pkg/strategy"
)

// Section banners written before each component's output.
const (
	sectionSingleton = "Singleton Design Pattern - NotificationManager"
	sectionFactory   = "Factory Design Pattern - NotificationFactory"
	sectionObserver  = "Observer Design Pattern - NotificationObserver"
	sectionStrategy  = "Strategy Design Pattern - NotificationStrategyManager"
	sectionDecorator = "Decorator Design Pattern - BasicNotificationDecorator"
)

// Option configures a demo run.
type Option func(*runner)

// WithLogger sets the logger for run diagnostics. Diagnostics never
// appear in the transcript itself.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

type runner struct {
	out    io.Writer
	logger *slog.Logger
	script Script
}

// Run executes the five component demonstrations in order, writing the
// transcript to w. A nil w falls back to os.Stdout.
//
// The singleton section reconfigures the shared registry to write to w,
// so concurrent Run calls would interleave its lines; run demos one at
// a time.
func Run(ctx context.Context, w io.Writer, script Script, opts ...Option) error {
	if w == nil {
		w = os.Stdout
	}
	if err := script.Validate(); err != nil {
		return err
	}

	r := &runner{out: w, logger: slog.Default(), script: script}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := fmt.Fprintln(r.out, script.Greeting); err != nil {
		return err
	}

	steps := []func(context.Context) error{
		r.singleton,
		r.factory,
		r.observer,
		r.strategy,
		r.decorator,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(ctx); err != nil {
			return err
		}
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "demo complete", logger.Count(len(steps)))
	return nil
}

func (r *runner) section(ctx context.Context, title string) error {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "starting demo section", logger.Section(title))
	_, err := fmt.Fprintln(r.out, title)
	return err
}

func (r *runner) singleton(ctx context.Context) error {
	if err := r.section(ctx, sectionSingleton); err != nil {
		return err
	}

	mgr := manager.Instance()
	mgr.SetOutput(r.out)
	mgr.SendNotification(ctx, r.script.Singleton.Message)
	return nil
}

func (r *runner) factory(ctx context.Context) error {
	if err := r.section(ctx, sectionFactory); err != nil {
		return err
	}

	sender, err := channel.New(r.script.Factory.Kind, channel.WithOutput(r.out))
	if err != nil {
		return fmt.Errorf("factory section: %w", err)
	}
	return sender.Send(ctx, r.script.Factory.Message)
}

func (r *runner) observer(ctx context.Context) error {
	if err := r.section(ctx, sectionObserver); err != nil {
		return err
	}

	list := roster.New()
	list.Subscribe(roster.NewEmailSubscriber(r.out))
	list.Subscribe(roster.NewSMSSubscriber(r.out))
	return list.NotifyAll(ctx, r.script.Observer.Message)
}

func (r *runner) strategy(ctx context.Context) error {
	if err := r.section(ctx, sectionStrategy); err != nil {
		return err
	}

	m := strategy.New()
	m.SetStrategy(strategy.NewEmail(r.out))
	if err := m.Send(ctx, r.script.Strategy.EmailMessage); err != nil {
		return err
	}

	m.SetStrategy(strategy.NewSMS(r.out))
	return m.Send(ctx, r.script.Strategy.SMSMessage)
}

func (r *runner) decorator(ctx context.Context) error {
	if err := r.section(ctx, sectionDecorator); err != nil {
		return err
	}

	base := decorator.NewBase()
	wrapped := decorator.NewEmail(base)
	full := decorator.NewSMS(wrapped)

	for _, p := range []decorator.Producer{base, wrapped, full} {
		if _, err := fmt.Fprintln(r.out, p.Produce()); err != nil {
			return err
		}
	}
	return nil
}
