package service

import (
	"io"
	"log/slog"
)

// Notifier delivers user-facing notifications raised by the engines: timer
// auto-transitions and bill reminders. Implementations must not block.
type Notifier interface {
	Notify(title, body string)
}

// NoopNotifier drops all notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string, string) {}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier writes notifications to the given writer as structured log
// lines. This is the delivery channel for the watch loop.
func NewLogNotifier(w io.Writer) Notifier {
	if w == nil {
		return NoopNotifier{}
	}
	return &logNotifier{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (n *logNotifier) Notify(title, body string) {
	n.logger.Info("notification", "title", title, "body", body)
}
