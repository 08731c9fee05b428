package config

import (
	"os"
	"runtime/debug"
)

const fallbackVersion = "0.1.0"

// GetVersion returns version from APP_VERSION or the module build info
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return fallbackVersion + "+" + setting.Value[:7]
			}
		}
	}

	return fallbackVersion
}
