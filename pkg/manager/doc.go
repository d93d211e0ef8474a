// Package manager provides the process-wide notification registry.
//
// Instance returns a single shared Manager, constructed lazily on the
// first call. Construction is guarded so that concurrent first calls
// build exactly one instance and every caller observes the same one.
// The registry lives for the remainder of the process.
//
// # Usage
//
//	mgr := manager.Instance()
//	mgr.SendNotification(ctx, "Hello, Singleton")
//
// Sending writes one line per message to the configured output and
// records the send in an in-memory history:
//
//	for _, e := range mgr.History() {
//		fmt.Println(e.ID, e.Message)
//	}
//
// # Testing
//
// NewManager creates private registries that do not touch the shared
// instance. Reset discards the shared instance so the next Instance
// call constructs a fresh one; it exists for tests and must not be
// used while other goroutines hold the previous instance.
package manager
