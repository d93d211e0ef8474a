// Package channel constructs notification senders from a kind string.
//
// The factory is the only entry point: callers never see the concrete
// sender types, only the Sender interface. Every call to New returns a
// fresh, independent instance, so senders can be configured and
// discarded freely.
//
// # Usage
//
//	sender, err := channel.New(channel.KindEmail)
//	if err != nil {
//		// the kind string was not recognized
//	}
//	_ = sender.Send(ctx, "Hello, Factory!")
//
// Senders write one line per message to their configured output,
// os.Stdout unless overridden:
//
//	sender := channel.MustNew(channel.KindSMS, channel.WithOutput(&buf))
//
// # Error Handling
//
// New reports unrecognized kinds with ErrUnknownKind; the returned
// error carries the offending kind string:
//
//	if errors.Is(err, channel.ErrUnknownKind) {
//		log.Printf("pick one of %v", channel.Kinds())
//	}
package channel
