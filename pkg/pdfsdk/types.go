package pdfsdk

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error             string  `json:"error"`
	ErrorDescription  string  `json:"error_description,omitempty"`
	RetryAfterSeconds float64 `json:"retry_after_seconds,omitempty"` // set on 429 only
}

// ConvertRequest is the body of POST /convert.
type ConvertRequest struct {
	HTML           string `json:"html"`
	CSS            string `json:"css,omitempty"`
	Filename       string `json:"filename,omitempty"`
	BaseURL        string `json:"base_url,omitempty"`
	PageSize       string `json:"page_size,omitempty"` // "A4" (default), "Letter", ... or "auto"
	Width          string `json:"width,omitempty"`
	Height         string `json:"height,omitempty"`
	Margin         string `json:"margin,omitempty"`
	ViewportWidth  int    `json:"viewport_width,omitempty"`
	ViewportHeight int    `json:"viewport_height,omitempty"`
}

// RateLimitInfo reports the shared per-key ceilings.
type RateLimitInfo struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	RequestsPerHour   int `json:"requests_per_hour"`
}

// KeyEntry is one masked key in a listing. Key holds the masked preview,
// whose prefix addresses the key in update and delete calls.
type KeyEntry struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Created string `json:"created"`
	Active  bool   `json:"active"`
}

// ListKeysResponse is the body of GET /admin/keys.
type ListKeysResponse struct {
	Total     int           `json:"total"`
	Keys      []KeyEntry    `json:"keys"`
	RateLimit RateLimitInfo `json:"rate_limit"`
}

// CreateKeyRequest is the body of POST /admin/keys.
type CreateKeyRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"` // defaults to true
}

// CreateKeyResponse carries the full secret, disclosed exactly once.
type CreateKeyResponse struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Created string `json:"created"`
	Active  bool   `json:"active"`
	Warning string `json:"warning"`
}

// UpdateKeyRequest is the body of PATCH /admin/keys/{prefix}. Absent
// fields are left unchanged.
type UpdateKeyRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// KeyResponse is the body of successful update and delete calls.
type KeyResponse struct {
	Message string   `json:"message"`
	Key     KeyEntry `json:"key"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	UpdatedAt string   `json:"updated_at"`
	Changelog []string `json:"changelog,omitempty"`
	GoVersion string   `json:"go_version"`
	Timestamp string   `json:"timestamp"`
}

// HomeResponse is the self-documenting body of GET /.
type HomeResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	UpdatedAt string            `json:"updated_at"`
	Endpoints map[string]string `json:"endpoints"`
	Usage     UsageInfo         `json:"usage"`
}

// UsageInfo documents the conversion endpoint.
type UsageInfo struct {
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	ContentType string            `json:"content-type"`
	Body        map[string]string `json:"body"`
}
