package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformConfigDir returns the conventional config directory for app.
func PlatformConfigDir(homeDir, app string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", app)
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, app)
		}
		return filepath.Join(homeDir, ".config", app)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, app)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", app)
	default:
		return filepath.Join(homeDir, "."+app)
	}
}
