// Package platform provides OS-aware helpers for data paths.
// All code that needs to behave differently per OS must use this package.
// Never use runtime.GOOS checks scattered across the codebase — put them here.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// GOOS returns the current operating system.
// Values: "linux", "darwin", "windows"
func GOOS() string {
	return runtime.GOOS
}

// IsWindows returns true when running on Windows.
func IsWindows() bool { return runtime.GOOS == "windows" }

// IsMac returns true when running on macOS.
func IsMac() bool { return runtime.GOOS == "darwin" }

// IsLinux returns true when running on Linux.
func IsLinux() bool { return runtime.GOOS == "linux" }

// DefaultDataDir returns the OS-appropriate data directory for promptcost.
//
//	Linux:   ~/.local/share/promptcost
//	macOS:   ~/Library/Application Support/promptcost
//	Windows: %APPDATA%\promptcost
//
// If PROMPTCOST_DATA_DIR env var is set, that takes priority (used in Docker).
func DefaultDataDir() string {
	if env := os.Getenv("PROMPTCOST_DATA_DIR"); env != "" {
		return env
	}
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, _ := os.UserHomeDir()
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "promptcost")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "promptcost")
	default: // linux
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "promptcost")
	}
}

// DataPath returns a path inside the data directory.
// Uses filepath.Join so it is correct on all platforms.
//
// Example: DataPath("pricing-cache.json") → ~/.local/share/promptcost/pricing-cache.json
func DataPath(parts ...string) string {
	base := DefaultDataDir()
	return filepath.Join(append([]string{base}, parts...)...)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
