//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/shorts/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alive reports whether a process with pid exists. Signal 0 performs the
// existence check without delivering anything.
func alive(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")
	require.True(t, alive(pid), "launcher should run before Close")

	require.NoError(t, fetcher.Close())

	time.Sleep(100 * time.Millisecond)
	assert.False(t, alive(pid), "launcher should be gone after Close")
}

func TestBrowserManager_Recycle_KillsOldLauncher(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxPages(1))
	require.NoError(t, err)
	defer manager.Close()

	_ = manager.Browser()
	oldPID := manager.LauncherPID()
	manager.IncrementPageCount()
	_ = manager.Browser()

	time.Sleep(100 * time.Millisecond)
	assert.NotEqual(t, oldPID, manager.LauncherPID())
	assert.False(t, alive(oldPID), "old launcher should be gone after recycle")
}
