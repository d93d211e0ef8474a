package strategy

import (
	"context"
	"fmt"
	"io"
	"os"
)

// EmailStrategy renders messages as email strategy lines.
type EmailStrategy struct {
	output io.Writer
}

// NewEmail creates an email delivery strategy writing to w.
// A nil w falls back to os.Stdout.
func NewEmail(w io.Writer) *EmailStrategy {
	if w == nil {
		w = os.Stdout
	}
	return &EmailStrategy{output: w}
}

func (s *EmailStrategy) Send(ctx context.Context, message string) error {
	if _, err := fmt.Fprintf(s.output, "Email Strategy: %s\n", message); err != nil {
		return fmt.Errorf("email strategy: %w", err)
	}
	return nil
}

// SMSStrategy renders messages as SMS strategy lines.
type SMSStrategy struct {
	output io.Writer
}

// NewSMS creates an SMS delivery strategy writing to w.
// A nil w falls back to os.Stdout.
func NewSMS(w io.Writer) *SMSStrategy {
	if w == nil {
		w = os.Stdout
	}
	return &SMSStrategy{output: w}
}

func (s *SMSStrategy) Send(ctx context.Context, message string) error {
	if _, err := fmt.Fprintf(s.output, "SMS Strategy: %s\n", message); err != nil {
		return fmt.Errorf("sms strategy: %w", err)
	}
	return nil
}
