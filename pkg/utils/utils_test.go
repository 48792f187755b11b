package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHomeDir(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", "/home/tester"},
		{"tilde slash", "~/.local/share/applications", "/home/tester/.local/share/applications"},
		{"absolute", "/usr/share/applications", "/usr/share/applications"},
		{"tilde user form untouched", "~other/apps", "~other/apps"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHomeDir(tt.in))
		})
	}
}

func TestXDGDirs(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Equal(t, "/home/tester/.local/share", GetDataDir())
	assert.Equal(t, "/home/tester/.config", GetConfigDir())

	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_CONFIG_HOME", "/conf")
	assert.Equal(t, "/data", GetDataDir())
	assert.Equal(t, "/conf", GetConfigDir())
}

func TestDefaultDesktopDirsUserLast(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	dirs := DefaultDesktopDirs()
	require.NotEmpty(t, dirs)
	assert.Equal(t, "/usr/share/applications", dirs[0])
	assert.Equal(t, "/data/applications", dirs[len(dirs)-1])
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\n"), 0o644))
}

func TestDesktopFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.desktop"))
	writeFile(t, filepath.Join(dir, "a.desktop"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "c.desktop.bak"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.desktop"), 0o755))

	files := DesktopFiles(dir, nil)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.desktop"),
		filepath.Join(dir, "b.desktop"),
	}, files)
}

func TestDesktopFilesMissingDir(t *testing.T) {
	assert.Empty(t, DesktopFiles(filepath.Join(t.TempDir(), "nope"), nil))
}

func TestDesktopFilesNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "single.desktop")
	writeFile(t, file)

	assert.False(t, IsDirectory(file))
	assert.Empty(t, DesktopFiles(file, nil))
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("DMENU_DESKTOP_TEST_VAR", "")
	assert.Equal(t, "fallback", GetEnvOrDefault("DMENU_DESKTOP_TEST_VAR", "fallback"))

	t.Setenv("DMENU_DESKTOP_TEST_VAR", "set")
	assert.Equal(t, "set", GetEnvOrDefault("DMENU_DESKTOP_TEST_VAR", "fallback"))
}

func TestDesktopFilesExclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wine-notepad.desktop"))
	writeFile(t, filepath.Join(dir, "wine-winecfg.desktop"))
	writeFile(t, filepath.Join(dir, "firefox.desktop"))

	exclude, err := NewExcluder([]string{"wine-*"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "firefox.desktop")}, DesktopFiles(dir, exclude))
}

func TestExcluderNegation(t *testing.T) {
	exclude, err := NewExcluder([]string{"wine-*", "!wine-winecfg.desktop"})
	require.NoError(t, err)

	assert.True(t, exclude.Excluded("/apps/wine-notepad.desktop"))
	assert.False(t, exclude.Excluded("/apps/wine-winecfg.desktop"))
	assert.False(t, exclude.Excluded("/apps/firefox.desktop"))
}

func TestExcluderEmpty(t *testing.T) {
	exclude, err := NewExcluder(nil)
	require.NoError(t, err)
	assert.False(t, exclude.Excluded("/apps/anything.desktop"))

	var none *Excluder
	assert.False(t, none.Excluded("/apps/anything.desktop"))
}

func TestNotificationCommand(t *testing.T) {
	cmd := notificationCommand("notify-send", "dmenu-desktop", "boom", 0)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"notify-send", "-u", "critical", "-t", "5000", "dmenu-desktop", "boom"}, cmd.Args)

	assert.Nil(t, notificationCommand("", "t", "m", 0))
	assert.Nil(t, notificationCommand("zenity", "t", "m", 0))
}
