package manager_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/notifykit/pkg/logger"
	"github.com/notifykit/notifykit/pkg/manager"
)

// failingWriter simulates a broken output destination.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("writer closed")
}

func TestSendNotification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		message  string
		wantLine string
	}{
		{
			name:     "plain message",
			message:  "Hello, Singleton",
			wantLine: "Sending notification: Hello, Singleton\n",
		},
		{
			name:     "empty message is valid",
			message:  "",
			wantLine: "Sending notification: \n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			mgr := manager.NewManager(manager.WithOutput(&buf))

			before := time.Now()
			mgr.SendNotification(context.Background(), tt.message)

			assert.Equal(t, tt.wantLine, buf.String())

			history := mgr.History()
			require.Len(t, history, 1)
			assert.Equal(t, tt.message, history[0].Message)
			assert.False(t, history[0].SentAt.Before(before))

			_, err := uuid.Parse(history[0].ID)
			assert.NoError(t, err, "history entries carry generated UUIDs")
		})
	}
}

func TestSendNotificationWriteFailure(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	mgr := manager.NewManager(
		manager.WithOutput(failingWriter{}),
		manager.WithLogger(logger.New(logger.WithOutput(&logBuf))),
	)

	mgr.SendNotification(context.Background(), "lost line")

	require.Len(t, mgr.History(), 1, "failed writes must still be recorded")
	assert.Contains(t, logBuf.String(), "Failed to write notification")
}

func TestHistoryLimit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mgr := manager.NewManager(manager.WithOutput(&buf), manager.WithHistoryLimit(3))

	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		mgr.SendNotification(context.Background(), msg)
	}

	history := mgr.History()
	require.Len(t, history, 3)
	assert.Equal(t, "three", history[0].Message)
	assert.Equal(t, "four", history[1].Message)
	assert.Equal(t, "five", history[2].Message)
}

func TestHistoryReturnsCopy(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mgr := manager.NewManager(manager.WithOutput(&buf))
	mgr.SendNotification(context.Background(), "original")

	history := mgr.History()
	history[0].Message = "mutated"

	assert.Equal(t, "original", mgr.History()[0].Message)
}

func TestSetOutput(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	mgr := manager.NewManager(manager.WithOutput(&first))

	mgr.SendNotification(context.Background(), "to first")
	mgr.SetOutput(&second)
	mgr.SetOutput(nil) // ignored
	mgr.SendNotification(context.Background(), "to second")

	assert.Equal(t, "Sending notification: to first\n", first.String())
	assert.Equal(t, "Sending notification: to second\n", second.String())
}
