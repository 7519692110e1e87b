package pdfsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with the SDKClient's HTTP client.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doKeyRequest performs a conversion request authenticated with the API key.
func (c *SDKClient) doKeyRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
) (*http.Response, error) {
	return c.doRequest(ctx, method, path, body, map[string]string{
		"Content-Type": "application/json",
		"X-API-Key":    c.APIKey,
	})
}

// doAdminRequest performs an admin request authenticated with the super-user key.
func (c *SDKClient) doAdminRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
) (*http.Response, error) {
	return c.doRequest(ctx, method, path, body, map[string]string{
		"Content-Type":     "application/json",
		"X-Super-User-Key": c.SuperUserKey,
	})
}

// decodeJSON decodes a JSON response into the target interface.
// Returns a typed APIError if the response status does not match.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
