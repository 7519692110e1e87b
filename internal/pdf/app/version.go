package app

import (
	"encoding/json"
	"os"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
)

// LoadVersionInfo reads version.json from the given path. A missing or
// malformed file falls back to the compiled-in defaults so the system
// endpoints keep working.
func LoadVersionInfo(path string) domain.VersionInfo {
	fallback := domain.VersionInfo{
		Name:      "HTML to PDF Conversion API",
		Version:   BuildVersion,
		UpdatedAt: "unknown",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}

	var info domain.VersionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return fallback
	}

	if info.Name == "" {
		info.Name = fallback.Name
	}
	if info.Version == "" {
		info.Version = fallback.Version
	}

	return info
}
