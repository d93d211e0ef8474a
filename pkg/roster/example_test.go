package roster_test

import (
	"context"
	"os"

	"github.com/notifykit/notifykit/pkg/roster"
)

func ExampleRoster_NotifyAll() {
	r := roster.New()
	r.Subscribe(roster.NewEmailSubscriber(os.Stdout))
	r.Subscribe(roster.NewSMSSubscriber(os.Stdout))

	_ = r.NotifyAll(context.Background(), "Hello, Observe!")
	// Output:
	// Email Subscriber received: Hello, Observe!
	// SMS Subscriber received: Hello, Observe!
}

func ExampleRoster_Unsubscribe() {
	email := roster.NewEmailSubscriber(os.Stdout)

	r := roster.New()
	r.Subscribe(email)
	r.Subscribe(roster.NewSMSSubscriber(os.Stdout))
	r.Unsubscribe(email)

	_ = r.NotifyAll(context.Background(), "SMS only")
	// Output: SMS Subscriber received: SMS only
}
