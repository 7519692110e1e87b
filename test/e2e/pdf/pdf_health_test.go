package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint verifies the unauthenticated system endpoints.
func TestHealthEndpoint(t *testing.T) {
	baseURL, cleanup := setupPDFContainer(t, defaultPerMinute, defaultPerHour)
	defer cleanup()

	client := newSuperClient(baseURL)

	t.Run("Health", func(t *testing.T) {
		health, err := client.GetHealth(t.Context())
		require.NoError(t, err)
		require.Equal(t, "healthy", health.Status)
		require.NotEmpty(t, health.Version)
		require.NotEmpty(t, health.Timestamp)
	})

	t.Run("Version", func(t *testing.T) {
		version, err := client.GetVersion(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, version.Name)
		require.NotEmpty(t, version.Version)
		require.NotEmpty(t, version.GoVersion)
	})

	t.Run("Home", func(t *testing.T) {
		home, err := client.GetHome(t.Context())
		require.NoError(t, err)
		require.NotEmpty(t, home.Service)
		require.Contains(t, home.Endpoints, "/convert")
		require.Equal(t, "/convert", home.Usage.Endpoint)
		require.Equal(t, "POST", home.Usage.Method)
	})
}
