package roster

import (
	"context"
	"fmt"
	"io"
	"os"
)

// EmailSubscriber writes received messages as email notification lines.
type EmailSubscriber struct {
	output io.Writer
}

// NewEmailSubscriber creates a subscriber writing to w.
// A nil w falls back to os.Stdout.
func NewEmailSubscriber(w io.Writer) *EmailSubscriber {
	if w == nil {
		w = os.Stdout
	}
	return &EmailSubscriber{output: w}
}

func (s *EmailSubscriber) Update(ctx context.Context, message string) error {
	if _, err := fmt.Fprintf(s.output, "Email Subscriber received: %s\n", message); err != nil {
		return fmt.Errorf("email subscriber: %w", err)
	}
	return nil
}

// SMSSubscriber writes received messages as SMS notification lines.
type SMSSubscriber struct {
	output io.Writer
}

// NewSMSSubscriber creates a subscriber writing to w.
// A nil w falls back to os.Stdout.
func NewSMSSubscriber(w io.Writer) *SMSSubscriber {
	if w == nil {
		w = os.Stdout
	}
	return &SMSSubscriber{output: w}
}

func (s *SMSSubscriber) Update(ctx context.Context, message string) error {
	if _, err := fmt.Fprintf(s.output, "SMS Subscriber received: %s\n", message); err != nil {
		return fmt.Errorf("sms subscriber: %w", err)
	}
	return nil
}
