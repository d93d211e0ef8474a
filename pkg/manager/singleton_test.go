package manager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/notifykit/notifykit/pkg/manager"
)

// The singleton tests share process-wide state and must not run in
// parallel with each other.

func TestInstanceIdentity(t *testing.T) {
	manager.Reset()
	t.Cleanup(manager.Reset)

	first := manager.Instance()
	second := manager.Instance()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestInstanceConcurrentFirstAccess(t *testing.T) {
	manager.Reset()
	t.Cleanup(manager.Reset)

	const n = 64
	instances := make([]*manager.Manager, n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			instances[i] = manager.Instance()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	first := instances[0]
	require.NotNil(t, first)
	for _, m := range instances {
		assert.Same(t, first, m, "every caller must observe the same instance")
	}
}

func TestReset(t *testing.T) {
	manager.Reset()
	t.Cleanup(manager.Reset)

	before := manager.Instance()
	manager.Reset()
	after := manager.Instance()

	assert.NotSame(t, before, after)
}
