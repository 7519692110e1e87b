package pdfsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListKeys returns every stored key with its secret masked.
// Requires SuperUserKey to be set.
func (c *SDKClient) ListKeys(ctx context.Context) (*ListKeysResponse, error) {
	resp, err := c.doAdminRequest(ctx, http.MethodGet, "/admin/keys", nil)
	if err != nil {
		return nil, err
	}

	var list ListKeysResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateKey generates a new API key. The full secret appears only in this
// response and cannot be retrieved again. Requires SuperUserKey to be set.
func (c *SDKClient) CreateKey(ctx context.Context, req CreateKeyRequest) (*CreateKeyResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doAdminRequest(ctx, http.MethodPost, "/admin/keys", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var created CreateKeyResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateKey partially updates the key addressed by a secret prefix.
// Requires SuperUserKey to be set.
func (c *SDKClient) UpdateKey(ctx context.Context, prefix string, req UpdateKeyRequest) (*KeyResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doAdminRequest(ctx, http.MethodPatch, "/admin/keys/"+url.PathEscape(prefix), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var updated KeyResponse
	if err := decodeJSON(resp, &updated, http.StatusOK); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteKey permanently removes the key addressed by a secret prefix.
// Requires SuperUserKey to be set.
func (c *SDKClient) DeleteKey(ctx context.Context, prefix string) (*KeyResponse, error) {
	resp, err := c.doAdminRequest(ctx, http.MethodDelete, "/admin/keys/"+url.PathEscape(prefix), nil)
	if err != nil {
		return nil, err
	}

	var removed KeyResponse
	if err := decodeJSON(resp, &removed, http.StatusOK); err != nil {
		return nil, err
	}

	return &removed, nil
}
