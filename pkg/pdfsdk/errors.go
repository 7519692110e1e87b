package pdfsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the service.
const (
	ErrorCodeInvalidRequest        = "invalid_request"
	ErrorCodeMissingCredential     = "missing_credential"
	ErrorCodeInvalidCredential     = "invalid_credential"
	ErrorCodeInsufficientPrivilege = "insufficient_privilege"
	ErrorCodeRateLimitExceeded     = "rate_limit_exceeded"
	ErrorCodeKeyNotFound           = "key_not_found"
	ErrorCodeAmbiguousPrefix       = "ambiguous_prefix"
	ErrorCodePayloadTooLarge       = "payload_too_large"
	ErrorCodeRenderFailed          = "render_failed"
	ErrorCodeServerError           = "server_error"
)

// APIError represents an error response from the service.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credential")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`

	// RetryAfterSeconds is set on rate limit errors and tells the caller
	// how long to wait before the next attempt.
	RetryAfterSeconds float64 `json:"retry_after_seconds,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsRateLimited reports whether the error is a 429 rate limit denial.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// parseErrorResponse attempts to parse an HTTP error response into a typed error.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:        resp.StatusCode,
			Code:              errResp.Error,
			Description:       errResp.ErrorDescription,
			RetryAfterSeconds: errResp.RetryAfterSeconds,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
