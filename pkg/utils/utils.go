// Package utils provides filesystem and environment helpers for dmenu-desktop.
// It includes home and XDG directory resolution, desktop file enumeration
// and terminal detection.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// ============================================================================
// Environment Utilities
// ============================================================================

// GetHomeDir returns home directory
func GetHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// GetEnvOrDefault returns environment variable or default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetConfigDir returns XDG config directory
func GetConfigDir() string {
	return GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(GetHomeDir(), ".config"))
}

// GetDataDir returns XDG data directory
func GetDataDir() string {
	return GetEnvOrDefault("XDG_DATA_HOME", filepath.Join(GetHomeDir(), ".local", "share"))
}

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ============================================================================
// File System Utilities
// ============================================================================

// ExpandHomeDir expands a leading ~ in paths
func ExpandHomeDir(path string) string {
	if path == "~" {
		return GetHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(GetHomeDir(), path[2:])
	}
	return path
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	return os.ExpandEnv(ExpandHomeDir(path))
}

// IsDirectory checks if path is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(ExpandHomeDir(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
