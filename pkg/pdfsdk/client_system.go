package pdfsdk

import (
	"context"
	"net/http"
)

// GetHome returns the service description and endpoint documentation.
func (c *SDKClient) GetHome(ctx context.Context) (*HomeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return nil, err
	}

	var home HomeResponse
	if err := decodeJSON(resp, &home, http.StatusOK); err != nil {
		return nil, err
	}

	return &home, nil
}

// GetHealth checks if the service is alive.
func (c *SDKClient) GetHealth(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetVersion returns the deployed version and changelog.
func (c *SDKClient) GetVersion(ctx context.Context) (*VersionResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/version", nil, nil)
	if err != nil {
		return nil, err
	}

	var version VersionResponse
	if err := decodeJSON(resp, &version, http.StatusOK); err != nil {
		return nil, err
	}

	return &version, nil
}
