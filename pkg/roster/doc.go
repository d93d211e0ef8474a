// Package roster maintains an ordered collection of notification
// subscribers and broadcasts messages to them.
//
// Subscribers are notified synchronously in insertion order. The same
// subscriber may be registered more than once and is then notified once
// per registration. The roster holds plain interface references and
// never manages subscriber lifetime.
//
// # Usage
//
//	r := roster.New()
//	r.Subscribe(roster.NewEmailSubscriber(os.Stdout))
//	r.Subscribe(roster.NewSMSSubscriber(os.Stdout))
//
//	if err := r.NotifyAll(ctx, "Hello, Observe!"); err != nil {
//		// a subscriber rejected the message; later ones were skipped
//	}
//
// # Error Handling
//
// NotifyAll stops at the first subscriber error and returns it wrapped
// with the subscriber's position in the broadcast. There is no partial
// failure isolation; callers decide whether to retry.
package roster
