// Package notifykit demonstrates five classic design patterns through a
// small notification domain.
//
// Each pattern lives in its own package and works standalone; this root
// package ties them together into a scripted demo that writes a fixed
// transcript to a writer of your choice.
//
// Key Features:
//
//   - Singleton: a process-wide notification registry (pkg/manager)
//   - Factory: channel senders built from a kind string (pkg/channel)
//   - Observer: subscriber rosters with ordered broadcast (pkg/roster)
//   - Strategy: a swappable delivery slot (pkg/strategy)
//   - Decorator: message wrapping layers (pkg/decorator)
//
// Basic Usage:
//
//	// Run the canonical demo against stdout
//	err := notifykit.Run(context.Background(), os.Stdout, notifykit.DefaultScript())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Custom Scripts:
//
// The demo is driven by a Script, parsed from YAML. Replace individual
// messages or the factory channel while keeping the section structure:
//
//	script, err := notifykit.ParseScript(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = notifykit.Run(ctx, os.Stdout, script)
//
// Diagnostics:
//
// Run emits debug-level diagnostics through log/slog, separate from the
// transcript. Pass a configured logger to capture them:
//
//	lg := logger.New(logger.WithLevel(slog.LevelDebug))
//	err := notifykit.Run(ctx, os.Stdout, notifykit.DefaultScript(), notifykit.WithLogger(lg))
//
// The packages follow these principles:
//   - Interfaces at the point of use, structs at the point of construction
//   - Explicit errors over panics
//   - Component output and diagnostics never share a stream
package notifykit
