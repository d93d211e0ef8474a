package channel

import (
	"context"
	"fmt"
	"io"
)

// smsSender renders messages as SMS notification lines.
// It holds no per-message state, so a single instance can be reused.
type smsSender struct {
	output io.Writer
}

func (s *smsSender) Send(ctx context.Context, message string) error {
	if _, err := fmt.Fprintf(s.output, "SMS Notification: %s\n", message); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
