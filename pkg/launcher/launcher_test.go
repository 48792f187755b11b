package launcher

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/dmenu-desktop/pkg/index"
)

type startCall struct {
	name string
	args []string
}

func recorder(calls *[]startCall, err error) StartFunc {
	return func(name string, args ...string) (int, error) {
		*calls = append(*calls, startCall{name: name, args: args})
		if err != nil {
			return 0, err
		}
		return 4242, nil
	}
}

func testEntries() *index.OrderedMap[string, string] {
	m := index.New[string, string]()
	m.Insert("Editor", "editor")
	m.Insert("Firefox", "firefox --new-window")
	return m
}

func TestLaunchKnownName(t *testing.T) {
	var calls []startCall
	log, _ := test.NewNullLogger()

	l := New(testEntries(), WithStartFunc(recorder(&calls, nil)), WithLogger(log))
	require.NoError(t, l.Launch("Firefox"))

	require.Len(t, calls, 1)
	assert.Equal(t, DefaultShell, calls[0].name)
	assert.Equal(t, []string{"-c", "firefox --new-window"}, calls[0].args)
}

func TestLaunchUnknownName(t *testing.T) {
	var calls []startCall

	l := New(testEntries(), WithStartFunc(recorder(&calls, nil)))
	err := l.Launch("Missing")

	require.Error(t, err)
	assert.True(t, IsUnknownSelection(err))
	assert.Contains(t, err.Error(), "Missing")
	assert.Empty(t, calls, "nothing may be launched for an unknown name")
}

func TestLaunchIsCaseSensitive(t *testing.T) {
	var calls []startCall

	l := New(testEntries(), WithStartFunc(recorder(&calls, nil)))
	assert.True(t, IsUnknownSelection(l.Launch("editor")))
	assert.Empty(t, calls)
}

func TestLaunchStartFailure(t *testing.T) {
	var calls []startCall
	boom := errors.New("fork: resource temporarily unavailable")

	l := New(testEntries(), WithStartFunc(recorder(&calls, boom)))
	err := l.Launch("Editor")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStart)
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsUnknownSelection(err))
}

func TestLaunchCustomShell(t *testing.T) {
	var calls []startCall

	l := New(testEntries(), WithShell("/bin/bash"), WithStartFunc(recorder(&calls, nil)))
	require.NoError(t, l.Launch("Editor"))
	assert.Equal(t, "/bin/bash", calls[0].name)

	calls = nil
	l = New(testEntries(), WithShell(""), WithStartFunc(recorder(&calls, nil)))
	require.NoError(t, l.Launch("Editor"))
	assert.Equal(t, DefaultShell, calls[0].name)
}

func TestLaunchDryRun(t *testing.T) {
	var calls []startCall
	var out bytes.Buffer

	l := New(testEntries(), WithDryRun(&out), WithStartFunc(recorder(&calls, nil)))
	require.NoError(t, l.Launch("Editor"))

	assert.Equal(t, "editor\n", out.String())
	assert.Empty(t, calls)
}

func TestLaunchRunsThroughShell(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	m := index.New[string, string]()
	m.Insert("Writer", "echo launched | tr a-z A-Z > "+out)

	require.NoError(t, New(m).Launch("Writer"))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "LAUNCHED\n"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestResolve(t *testing.T) {
	l := New(testEntries())

	cmd, err := l.Resolve("Editor")
	require.NoError(t, err)
	assert.Equal(t, "editor", cmd)

	_, err = l.Resolve("Nope")
	assert.True(t, IsUnknownSelection(err))
}
