package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Chrome renders documents with a headless Chrome instance driven over the
// DevTools protocol. The browser process is started once and reused; every
// Render call runs in a fresh tab.
type Chrome struct {
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

var _ Renderer = (*Chrome)(nil)

// NewChrome starts the headless browser. Chrome or Chromium must be
// available on the host.
func NewChrome() (*Chrome, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Run with no actions to launch the process now, so a missing or
	// broken Chrome install fails at startup instead of on first request.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	return &Chrome{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close shuts the browser down.
func (c *Chrome) Close() {
	c.browserCancel()
	c.allocCancel()
}

func (c *Chrome) Render(ctx context.Context, html string, opts domain.ConvertOptions) ([]byte, error) {
	dir, err := os.MkdirTemp("", "htmlpdf-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	// Serving the document from disk gives the page a proper file:// origin,
	// which Chrome needs for local subresource loads.
	docPath := filepath.Join(dir, "document.html")
	if err := os.WriteFile(docPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("write temp document: %w", err)
	}

	tab, cancelTab := chromedp.NewContext(c.browserCtx)
	defer cancelTab()

	// Propagate the caller's deadline into the tab.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var pdf []byte
	err = chromedp.Run(tab,
		chromedp.EmulateViewport(int64(opts.ViewportWidth), int64(opts.ViewportHeight)),
		chromedp.Navigate("file://"+docPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params, err := printParams(ctx, opts)
			if err != nil {
				return err
			}
			buf, _, err := params.Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

// printParams builds the PrintToPDF call from the conversion options. ctx
// must be a tab context with the document already loaded, since the auto
// page size is measured from the rendered content.
func printParams(ctx context.Context, opts domain.ConvertOptions) (*page.PrintToPDFParams, error) {
	margin, err := domain.ParseLength(opts.Margin)
	if err != nil {
		return nil, err
	}

	p := page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(false).
		WithMarginTop(margin).
		WithMarginBottom(margin).
		WithMarginLeft(margin).
		WithMarginRight(margin)

	var width, height float64
	if opts.PageSize == domain.PageSizeAuto {
		// Size the single page to the rendered content.
		var dims []float64
		err := chromedp.Evaluate(
			`[document.documentElement.scrollWidth, document.documentElement.scrollHeight]`,
			&dims,
		).Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("measure content: %w", err)
		}
		if len(dims) != 2 {
			return nil, fmt.Errorf("measure content: unexpected result")
		}
		width, height = dims[0]/96, dims[1]/96
	} else {
		ps, err := domain.LookupPaperSize(opts.PageSize)
		if err != nil {
			return nil, err
		}
		width, height = ps.Width, ps.Height
	}

	if opts.Width != "" {
		if width, err = domain.ParseLength(opts.Width); err != nil {
			return nil, err
		}
	}
	if opts.Height != "" {
		if height, err = domain.ParseLength(opts.Height); err != nil {
			return nil, err
		}
	}

	return p.WithPaperWidth(width).WithPaperHeight(height), nil
}
