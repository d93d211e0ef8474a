// Package decorator composes notification messages by wrapping a base
// producer with channel-specific layers.
//
// Every layer owns exactly one inner Producer and renders its own tag
// around whatever the inner chain renders, so layers can be stacked in
// any order and to any depth without knowing about each other.
//
// # Usage
//
//	wrapped := decorator.NewSMS(decorator.NewEmail(decorator.NewBase()))
//	fmt.Println(wrapped.Produce())
//	// SmsDecorator(EmailDecorator(Basic Notification))
//
// Wrap builds the same chain from a layer list, applying layers in
// order so the last one becomes the outermost decoration:
//
//	wrapped := decorator.Wrap(decorator.NewBase(), decorator.NewEmail, decorator.NewSMS)
//
// Producers are immutable once constructed. Rendering a chain any
// number of times yields the same string and never fails.
package decorator
