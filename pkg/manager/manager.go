package manager

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/notifykit/notifykit/pkg/logger"
)

// Entry is one recorded notification send.
type Entry struct {
	ID      string
	Message string
	SentAt  time.Time
}

// Manager writes notification lines and records them in a bounded
// in-memory history.
//
// Use Instance for the shared process-wide registry; NewManager exists
// for tests and for callers that deliberately want a private one.
type Manager struct {
	mu           sync.Mutex
	output       io.Writer
	logger       *slog.Logger
	history      []Entry
	historyLimit int
}

// Option configures a Manager.
type Option func(*Manager)

// WithOutput sets the destination for notification lines, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) {
		if w != nil {
			m.output = w
		}
	}
}

// WithLogger sets the logger for the Manager.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHistoryLimit caps the number of retained history entries.
// Non-positive limits are ignored.
func WithHistoryLimit(limit int) Option {
	return func(m *Manager) {
		if limit > 0 {
			m.historyLimit = limit
		}
	}
}

const defaultHistoryLimit = 1000

// NewManager creates a notification manager independent of the shared
// instance.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		output:       os.Stdout,
		logger:       slog.Default(),
		historyLimit: defaultHistoryLimit,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// SendNotification writes the notification line for message and
// records the send. Any message is valid, including the empty string.
// Delivery is best effort: a failing writer is logged and the entry is
// still recorded.
func (m *Manager) SendNotification(ctx context.Context, message string) {
	entry := Entry{
		ID:      uuid.New().String(),
		Message: message,
		SentAt:  time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := fmt.Fprintf(m.output, "Sending notification: %s\n", message); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to write notification, but it was recorded",
			logger.MessageID(entry.ID),
			logger.Error(err),
		)
	}

	m.history = append(m.history, entry)
	if len(m.history) > m.historyLimit {
		m.history = m.history[len(m.history)-m.historyLimit:]
	}
}

// History returns a copy of the recorded sends, oldest first.
func (m *Manager) History() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.history)
}

// SetOutput replaces the notification line destination.
// Nil writers are ignored.
func (m *Manager) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output = w
}

// SetLogger replaces the manager's logger. Nil loggers are ignored.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = l
}
