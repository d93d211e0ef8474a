package manager_test

import (
	"context"
	"fmt"
	"os"

	"github.com/notifykit/notifykit/pkg/manager"
)

func ExampleInstance() {
	mgr := manager.Instance()
	mgr.SetOutput(os.Stdout)

	mgr.SendNotification(context.Background(), "Hello, Singleton")
	// Output: Sending notification: Hello, Singleton
}

func ExampleNewManager() {
	mgr := manager.NewManager()
	mgr.SendNotification(context.Background(), "private registry")

	fmt.Println(len(mgr.History()))
	// Output:
	// Sending notification: private registry
	// 1
}
