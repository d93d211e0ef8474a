// Package strategy selects how a notification message is delivered at
// runtime.
//
// A Manager holds at most one Strategy and delegates Send to it. The
// strategy can be swapped at any time; each Send uses whichever
// strategy is installed when it is called. With no strategy installed
// Send does nothing and reports success, so callers never branch on
// configuration state.
//
// # Usage
//
//	m := strategy.New()
//	m.SetStrategy(strategy.NewEmail(os.Stdout))
//	_ = m.Send(ctx, "Hello email Strategy!")
//
//	m.SetStrategy(strategy.NewSMS(os.Stdout))
//	_ = m.Send(ctx, "Hello SMS Strategy!")
//
// Passing nil to SetStrategy clears the selection and returns the
// manager to its no-op state.
package strategy
