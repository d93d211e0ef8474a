package channel

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Sender delivers a single notification message over one channel.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// Recognized channel kinds. Matching in New is exact and case-sensitive.
const (
	KindEmail = "Email"
	KindSMS   = "SMS"
)

// Option configures senders created by the factory.
type Option func(*settings)

type settings struct {
	output io.Writer
}

func defaultSettings() *settings {
	return &settings{output: os.Stdout}
}

// WithOutput sets the destination for notification lines, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// New returns a fresh Sender for the given kind. Each call constructs
// an independent instance; the factory never caches or reuses senders.
func New(kind string, opts ...Option) (Sender, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	switch kind {
	case KindEmail:
		return &emailSender{output: s.output}, nil
	case KindSMS:
		return &smsSender{output: s.output}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// MustNew creates a sender that panics on unrecognized kinds.
// Follows the fail-fast pattern for kinds known at compile time.
func MustNew(kind string, opts ...Option) Sender {
	sender, err := New(kind, opts...)
	if err != nil {
		panic(err)
	}
	return sender
}

// Kinds lists the recognized channel kinds in stable order.
func Kinds() []string {
	return []string{KindEmail, KindSMS}
}
