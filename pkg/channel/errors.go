package channel

import "errors"

var (
	// ErrUnknownKind is returned by New when the kind string does not
	// match any recognized channel.
	ErrUnknownKind = errors.New("unknown channel kind")

	// ErrSendFailed is returned when a sender cannot write its
	// notification line.
	ErrSendFailed = errors.New("failed to send notification")
)
