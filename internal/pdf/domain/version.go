package domain

// VersionInfo mirrors the version.json document shipped alongside the
// service binary.
type VersionInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	UpdatedAt string   `json:"updated_at"`
	Changelog []string `json:"changelog,omitempty"`
}
