package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestStartDetachedProcessNewSession(t *testing.T) {
	pid, err := StartDetachedProcess("sleep", "2")
	require.NoError(t, err)
	require.Positive(t, pid)

	sid, err := unix.Getsid(pid)
	require.NoError(t, err)
	assert.Equal(t, pid, sid, "detached process must lead its own session")

	own, err := unix.Getsid(os.Getpid())
	require.NoError(t, err)
	assert.NotEqual(t, own, sid)
}

func TestStartDetachedProcessRuns(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ran")

	_, err := StartDetachedProcess("sh", "-c", "echo ok > "+out)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "ok\n"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestStartDetachedProcessMissing(t *testing.T) {
	_, err := StartDetachedProcess(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestStartDetachedProcessNullStdio(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "fds")

	// readlink runs as a child of the shell, so $$ still shows the inherited streams
	script := "exec 3>" + marker + "\n" +
		"readlink /proc/$$/fd/0 >&3\n" +
		"readlink /proc/$$/fd/1 >&3\n" +
		"readlink /proc/$$/fd/2 >&3\n"

	_, err := StartDetachedProcess("sh", "-c", script)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(marker)
		return err == nil && string(data) == "/dev/null\n/dev/null\n/dev/null\n"
	}, 5*time.Second, 20*time.Millisecond)
}
