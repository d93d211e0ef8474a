package strategy_test

import (
	"context"
	"os"

	"github.com/notifykit/notifykit/pkg/strategy"
)

func ExampleManager() {
	ctx := context.Background()

	m := strategy.New()
	m.SetStrategy(strategy.NewEmail(os.Stdout))
	_ = m.Send(ctx, "Hello email Strategy!")

	m.SetStrategy(strategy.NewSMS(os.Stdout))
	_ = m.Send(ctx, "Hello SMS Strategy!")

	m.SetStrategy(nil)
	_ = m.Send(ctx, "dropped silently")
	// Output:
	// Email Strategy: Hello email Strategy!
	// SMS Strategy: Hello SMS Strategy!
}
