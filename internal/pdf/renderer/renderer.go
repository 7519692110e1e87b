package renderer

import (
	"context"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
)

// Renderer turns an HTML document into PDF bytes. Implementations must
// honor ctx cancellation; the caller applies the render timeout.
type Renderer interface {
	Render(ctx context.Context, html string, opts domain.ConvertOptions) ([]byte, error)
}
