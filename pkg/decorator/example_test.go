package decorator_test

import (
	"fmt"

	"github.com/notifykit/notifykit/pkg/decorator"
)

func ExampleNewSMS() {
	base := decorator.NewBase()
	wrapped := decorator.NewSMS(decorator.NewEmail(base))

	fmt.Println(base.Produce())
	fmt.Println(wrapped.Produce())
	// Output:
	// Basic Notification
	// SmsDecorator(EmailDecorator(Basic Notification))
}

func ExampleWrap() {
	wrapped := decorator.Wrap(decorator.NewBase(), decorator.NewEmail, decorator.NewSMS)

	fmt.Println(wrapped.Produce())
	// Output: SmsDecorator(EmailDecorator(Basic Notification))
}
