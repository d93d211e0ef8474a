package channel

import (
	"context"
	"fmt"
	"io"
)

// emailSender renders messages as email notification lines.
// It holds no per-message state, so a single instance can be reused.
type emailSender struct {
	output io.Writer
}

func (s *emailSender) Send(ctx context.Context, message string) error {
	if _, err := fmt.Fprintf(s.output, "Email Notification: %s\n", message); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
