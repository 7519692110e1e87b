/*
Package pdfsdk provides a client SDK for the HTML to PDF conversion service.

# Overview

The pdfsdk package wraps the service's REST API: HTML to PDF conversion,
system endpoints (home, health, version) and the super-user key management
surface. All operations hang off a single SDKClient.

# Credentials

The service uses two header-carried credentials:

  - X-API-Key: an ordinary API key, required for Convert
  - X-Super-User-Key: the super-user key, required for key management

Set whichever the operations you call need:

	client := pdfsdk.NewSDKClient("https://pdf.example.com")
	client.APIKey = apiKey

	out, err := client.Convert(ctx, pdfsdk.ConvertRequest{
		HTML:     "<h1>Invoice</h1>",
		Filename: "invoice.pdf",
	})
	if err != nil {
		log.Fatal(err)
	}
	os.WriteFile(out.Filename, out.PDF, 0o644)

# Key Management

Admin operations address keys by a prefix of the secret (at least 8
characters of the original key). The full secret is only ever returned
once, from CreateKey:

	client.SuperUserKey = superKey

	created, err := client.CreateKey(ctx, pdfsdk.CreateKeyRequest{Name: "billing"})
	// created.Key holds the full secret, store it now

	list, err := client.ListKeys(ctx)     // secrets are masked
	_, err = client.UpdateKey(ctx, created.Key[:8], pdfsdk.UpdateKeyRequest{Active: &inactive})
	_, err = client.DeleteKey(ctx, created.Key[:8])

# Error Handling

All non-2xx responses are returned as *APIError carrying the HTTP status,
the machine-readable code and the description. Rate limit denials also
carry the retry hint:

	out, err := client.Convert(ctx, req)
	if err != nil {
		var apiErr *pdfsdk.APIError
		if errors.As(err, &apiErr) && apiErr.IsRateLimited() {
			time.Sleep(time.Duration(apiErr.RetryAfterSeconds * float64(time.Second)))
			// retry
		}
	}
*/
package pdfsdk
