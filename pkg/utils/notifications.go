package utils

import (
	"os"
	"os/exec"
	"strconv"
)

// NotificationConfig controls desktop notifications for reported errors.
// When dmenu-desktop runs from a window manager binding its stderr goes
// nowhere, so errors are also sent through dunstify or notify-send.
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	Tool    string `toml:"tool"` // "auto", "dunstify" or "notify-send"
	Timeout int    `toml:"timeout"`
}

// ShowErrorNotificationWithConfig sends a critical notification.
// It is a no-op when notifications are disabled, when stderr is a terminal
// or when no notification tool is installed.
func ShowErrorNotificationWithConfig(cfg *NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	if IsTerminal(os.Stderr) {
		return
	}

	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	cmd := notificationCommand(tool, title, message, cfg.Timeout)
	if cmd == nil {
		return
	}

	cmd.Env = os.Environ()
	if err := cmd.Start(); err == nil {
		go cmd.Wait()
	}
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

func notificationCommand(tool, title, message string, timeout int) *exec.Cmd {
	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return exec.Command(tool,
			"-u", "critical",
			"-t", strconv.Itoa(timeout),
			title,
			message)
	default:
		return nil
	}
}
