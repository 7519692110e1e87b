package pdfsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the HTML to PDF conversion service.
// Unauthenticated system endpoints work with a zero-value credential set;
// Convert requires APIKey and the admin endpoints require SuperUserKey.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// APIKey is sent as the X-API-Key header on conversion requests.
	APIKey string

	// SuperUserKey is sent as the X-Super-User-Key header on admin requests.
	SuperUserKey string
}

// NewSDKClient creates a new conversion service client.
// Conversions can take a while on large documents, so the default
// timeout is deliberately generous.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}
