package pdf_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/systemifyautomation/html-to-pdf/pkg/pdfsdk"
)

// TestConvert exercises the conversion endpoint with a real Chromium.
func TestConvert(t *testing.T) {
	baseURL, cleanup := setupPDFContainer(t, defaultPerMinute, defaultPerHour)
	defer cleanup()

	admin := newSuperClient(baseURL)

	client := pdfsdk.NewSDKClient(baseURL)
	client.APIKey = createTestKey(t, admin, "converter")

	t.Run("BasicDocument", func(t *testing.T) {
		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML: "<html><body><h1>Hello, PDF</h1></body></html>",
		})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
		require.Equal(t, "document.pdf", out.Filename)
	})

	t.Run("CustomFilename", func(t *testing.T) {
		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML:     "<p>invoice</p>",
			Filename: "invoice-2025",
		})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
		require.Equal(t, "invoice-2025.pdf", out.Filename, ".pdf extension should be appended")
	})

	t.Run("WithCSS", func(t *testing.T) {
		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML: "<html><head></head><body><p class='big'>styled</p></body></html>",
			CSS:  ".big { font-size: 40px; }",
		})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
	})

	t.Run("PageSizeAndMargin", func(t *testing.T) {
		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML:     "<p>letter with margins</p>",
			PageSize: "Letter",
			Margin:   "1cm",
		})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
	})

	t.Run("AutoPageSize", func(t *testing.T) {
		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML:     "<div style='width:600px;height:900px'>sized to content</div>",
			PageSize: "auto",
		})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
	})

	t.Run("CustomDimensions", func(t *testing.T) {
		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML:   "<p>custom page</p>",
			Width:  "1200px",
			Height: "800px",
		})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
	})

	t.Run("MissingHTML", func(t *testing.T) {
		_, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML: "   ",
		})
		assertAPIError(t, err, http.StatusBadRequest, pdfsdk.ErrorCodeInvalidRequest)
	})

	t.Run("UnknownPageSize", func(t *testing.T) {
		_, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML:     "<p>x</p>",
			PageSize: "A9",
		})
		assertAPIError(t, err, http.StatusBadRequest, pdfsdk.ErrorCodeInvalidRequest)
	})

	t.Run("InvalidMargin", func(t *testing.T) {
		_, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{
			HTML:   "<p>x</p>",
			Margin: "a lot",
		})
		assertAPIError(t, err, http.StatusBadRequest, pdfsdk.ErrorCodeInvalidRequest)
	})

	t.Run("LargeDocument", func(t *testing.T) {
		// A few hundred KB of content, well under the request cap but
		// enough to span multiple pages.
		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 5000; i++ {
			b.WriteString("<p>paragraph with some repeated filler text for pagination</p>")
		}
		b.WriteString("</body></html>")

		out, err := client.Convert(t.Context(), pdfsdk.ConvertRequest{HTML: b.String()})
		require.NoError(t, err)
		assertPDF(t, out.PDF)
	})
}
