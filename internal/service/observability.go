package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Observer receives execution telemetry from the periodic engine passes
// (timer tick, reminder dispatch).
type Observer interface {
	Observe(ctx context.Context, useCase string, d time.Duration, err error, fields ...any)
}

// NoopObserver ignores all telemetry.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, string, time.Duration, error, ...any) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes engine telemetry to the given writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(ctx context.Context, useCase string, d time.Duration, err error, fields ...any) {
	attrs := make([]any, 0, 6+len(fields))
	attrs = append(attrs,
		"use_case", useCase,
		"duration_ms", d.Milliseconds(),
	)
	attrs = append(attrs, fields...)
	if err != nil {
		attrs = append(attrs, "error", err.Error())
		o.logger.ErrorContext(ctx, "engine_pass", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "engine_pass", attrs...)
}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return NoopNotifier{}
	}
	return n
}
