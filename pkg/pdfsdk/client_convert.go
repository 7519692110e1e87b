package pdfsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

// ConvertOutput is the result of a successful conversion.
type ConvertOutput struct {
	// Filename is taken from the Content-Disposition header.
	Filename string

	// PDF holds the rendered document.
	PDF []byte

	// RateLimitRemaining is the per-minute budget left after this request,
	// or -1 when the header was absent (super-user calls are not limited).
	RateLimitRemaining int
}

// Convert renders the given HTML to PDF. Requires APIKey to be set.
func (c *SDKClient) Convert(ctx context.Context, req ConvertRequest) (*ConvertOutput, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doKeyRequest(ctx, http.MethodPost, "/convert", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}

	out := &ConvertOutput{
		PDF:                body,
		Filename:           "document.pdf",
		RateLimitRemaining: -1,
	}

	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				out.Filename = name
			}
		}
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil {
			out.RateLimitRemaining = n
		}
	}

	return out, nil
}
