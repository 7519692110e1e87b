package http

import (
	"net/http"
	"runtime"
	"time"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/pkg/httpx"
	"github.com/systemifyautomation/html-to-pdf/pkg/pdfsdk"
)

// HomeHandler handles GET /
//
//	@Summary		API documentation
//	@Description	Returns the service description and how to call the conversion endpoint.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	pdfsdk.HomeResponse	"Service documentation"
//	@Router			/ [get].
func HomeHandler(info domain.VersionInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, pdfsdk.HomeResponse{
			Service:   info.Name,
			Version:   info.Version,
			UpdatedAt: info.UpdatedAt,
			Endpoints: map[string]string{
				"/":           "GET - API documentation",
				"/convert":    "POST - Convert HTML to PDF",
				"/health":     "GET - Health check",
				"/version":    "GET - API version and update info",
				"/admin/keys": "GET/POST/PATCH/DELETE - API key management (super-user only)",
			},
			Usage: pdfsdk.UsageInfo{
				Endpoint:    "/convert",
				Method:      "POST",
				ContentType: "application/json",
				Body: map[string]string{
					"html":            "HTML content as string (required)",
					"css":             "Optional CSS styles as string (will be injected)",
					"filename":        "Optional output filename (default: document.pdf)",
					"base_url":        "Optional base URL for resolving relative URLs",
					"page_size":       `Optional: "A4" (default), "Letter", "Legal", "A3", etc. or "auto"`,
					"width":           `Optional: Custom width (e.g., "1200px", "21cm")`,
					"height":          `Optional: Custom height (e.g., "800px", "29.7cm")`,
					"margin":          `Optional: Page margins (default: "0")`,
					"viewport_width":  "Optional: Browser viewport width in pixels (default: 1920)",
					"viewport_height": "Optional: Browser viewport height in pixels (default: 1080)",
				},
			},
		})
	}
}

// HealthHandler handles GET /health
//
//	@Summary		Health check
//	@Description	Reports service liveness, version and the current timestamp.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	pdfsdk.HealthResponse	"status, version, timestamp"
//	@Router			/health [get].
func HealthHandler(info domain.VersionInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, pdfsdk.HealthResponse{
			Status:    "healthy",
			Version:   info.Version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// VersionHandler handles GET /version
//
//	@Summary		Version info
//	@Description	Returns the version.json contents plus runtime details.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	pdfsdk.VersionResponse	"version details"
//	@Router			/version [get].
func VersionHandler(info domain.VersionInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, pdfsdk.VersionResponse{
			Name:      info.Name,
			Version:   info.Version,
			UpdatedAt: info.UpdatedAt,
			Changelog: info.Changelog,
			GoVersion: runtime.Version(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
