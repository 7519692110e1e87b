package pdf_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/systemifyautomation/html-to-pdf/pkg/pdfsdk"
)

// TestAdminKeyLifecycle walks a key through create, list, update and delete.
func TestAdminKeyLifecycle(t *testing.T) {
	baseURL, cleanup := setupPDFContainer(t, defaultPerMinute, defaultPerHour)
	defer cleanup()

	admin := newSuperClient(baseURL)
	ctx := t.Context()

	// Create
	created, err := admin.CreateKey(ctx, pdfsdk.CreateKeyRequest{Name: "lifecycle"})
	require.NoError(t, err)
	require.Equal(t, "lifecycle", created.Name)
	require.True(t, created.Active)
	require.NotEmpty(t, created.Warning)
	require.Greater(t, len(created.Key), 12, "Full secret should be returned")

	prefix := created.Key[:10]

	// List shows it masked
	list, err := admin.ListKeys(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "lifecycle", list.Keys[0].Name)
	require.Contains(t, list.Keys[0].Key, "...", "Listed secret should be masked")
	require.NotEqual(t, created.Key, list.Keys[0].Key, "Listing must never return the full secret")
	require.True(t, strings.HasPrefix(created.Key, list.Keys[0].Key[:8]),
		"Masked preview should keep the addressable prefix")

	// Rename and deactivate
	newName := "lifecycle-renamed"
	inactive := false
	updated, err := admin.UpdateKey(ctx, prefix, pdfsdk.UpdateKeyRequest{Name: &newName, Active: &inactive})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Key.Name)
	require.False(t, updated.Key.Active)

	// A deactivated key stops converting immediately
	client := pdfsdk.NewSDKClient(baseURL)
	client.APIKey = created.Key
	_, err = client.Convert(ctx, pdfsdk.ConvertRequest{HTML: "<p>x</p>"})
	assertAPIError(t, err, http.StatusForbidden, pdfsdk.ErrorCodeInvalidCredential)

	// Delete, then the prefix no longer resolves
	removed, err := admin.DeleteKey(ctx, prefix)
	require.NoError(t, err)
	require.Equal(t, newName, removed.Key.Name)

	_, err = admin.DeleteKey(ctx, prefix)
	assertAPIError(t, err, http.StatusNotFound, pdfsdk.ErrorCodeKeyNotFound)
}

// TestAdminKeyValidation covers the request validation paths.
func TestAdminKeyValidation(t *testing.T) {
	baseURL, cleanup := setupPDFContainer(t, defaultPerMinute, defaultPerHour)
	defer cleanup()

	admin := newSuperClient(baseURL)
	ctx := t.Context()

	t.Run("CreateWithoutName", func(t *testing.T) {
		_, err := admin.CreateKey(ctx, pdfsdk.CreateKeyRequest{Name: "  "})
		assertAPIError(t, err, http.StatusBadRequest, pdfsdk.ErrorCodeInvalidRequest)
	})

	t.Run("UpdateWithoutFields", func(t *testing.T) {
		_ = createTestKey(t, admin, "untouched")
		list, err := admin.ListKeys(ctx)
		require.NoError(t, err)
		prefix := list.Keys[0].Key[:8]

		_, err = admin.UpdateKey(ctx, prefix, pdfsdk.UpdateKeyRequest{})
		assertAPIError(t, err, http.StatusBadRequest, pdfsdk.ErrorCodeInvalidRequest)
	})

	t.Run("UnknownPrefix", func(t *testing.T) {
		_, err := admin.DeleteKey(ctx, "nosuchprefix")
		assertAPIError(t, err, http.StatusNotFound, pdfsdk.ErrorCodeKeyNotFound)
	})
}

// TestAdminKeysPersisted verifies a freshly minted key is usable for
// conversion without any reload step.
func TestAdminKeysPersisted(t *testing.T) {
	baseURL, cleanup := setupPDFContainer(t, defaultPerMinute, defaultPerHour)
	defer cleanup()

	admin := newSuperClient(baseURL)
	ctx := t.Context()

	secret := createTestKey(t, admin, "persistent")

	// The freshly minted key converts straight away, which proves the
	// mutation is visible to the authentication path.
	client := pdfsdk.NewSDKClient(baseURL)
	client.APIKey = secret

	out, err := client.Convert(ctx, pdfsdk.ConvertRequest{HTML: "<p>persisted</p>"})
	require.NoError(t, err)
	assertPDF(t, out.PDF)
}
