package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/renderer"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"
)

var (
	ErrHTMLRequired = errors.New("html content is required")
	ErrRenderFailed = errors.New("pdf rendering failed")
)

// ConvertRequest is a validated-but-raw conversion request as received
// from a caller.
type ConvertRequest struct {
	HTML           string
	CSS            string
	Filename       string
	PageSize       string
	Width          string
	Height         string
	Margin         string
	ViewportWidth  int
	ViewportHeight int
	BaseURL        string // accepted for compatibility, unused by the Chrome backend
}

// ConvertResult is the rendered document plus its download filename.
type ConvertResult struct {
	Filename string
	PDF      []byte
}

// ConvertService validates requests, injects extra CSS, and drives the
// renderer under the configured timeout.
type ConvertService struct {
	Renderer renderer.Renderer
	Timeout  time.Duration
}

func (s *ConvertService) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(req.HTML) == "" {
		return ConvertResult{}, ErrHTMLRequired
	}

	opts, err := buildOptions(req)
	if err != nil {
		return ConvertResult{}, err
	}

	html := req.HTML
	if req.CSS != "" {
		html = injectCSS(html, req.CSS)
	}

	filename := domain.NormalizeFilename(req.Filename)
	l.Info("converting html to pdf", "filename", filename, "page_size", opts.PageSize, "bytes_in", len(html))

	rctx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	pdf, err := s.Renderer.Render(rctx, html, opts)
	if err != nil {
		l.Error("render failed", "filename", filename, "error", err)
		return ConvertResult{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	l.Info("pdf generated", "filename", filename, "bytes_out", len(pdf))
	return ConvertResult{Filename: filename, PDF: pdf}, nil
}

// buildOptions applies defaults and validates option values early, so bad
// input fails with a 400 instead of a renderer error.
func buildOptions(req ConvertRequest) (domain.ConvertOptions, error) {
	opts := domain.ConvertOptions{
		PageSize:       req.PageSize,
		Width:          req.Width,
		Height:         req.Height,
		Margin:         req.Margin,
		ViewportWidth:  req.ViewportWidth,
		ViewportHeight: req.ViewportHeight,
	}

	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	if opts.Margin == "" {
		opts.Margin = "0"
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 1920
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = 1080
	}

	if !strings.EqualFold(opts.PageSize, domain.PageSizeAuto) {
		if _, err := domain.LookupPaperSize(opts.PageSize); err != nil {
			return domain.ConvertOptions{}, err
		}
	} else {
		opts.PageSize = domain.PageSizeAuto
	}

	if _, err := domain.ParseLength(opts.Margin); err != nil {
		return domain.ConvertOptions{}, err
	}
	if _, err := domain.ParseLength(opts.Width); err != nil {
		return domain.ConvertOptions{}, err
	}
	if _, err := domain.ParseLength(opts.Height); err != nil {
		return domain.ConvertOptions{}, err
	}

	return opts, nil
}

var headCloseRe = regexp.MustCompile(`(?i)</head>`)

// injectCSS places a style block before </head> when the document has one,
// or wraps the fragment into a minimal document otherwise.
func injectCSS(html, css string) string {
	style := "<style>" + css + "</style>"

	if loc := headCloseRe.FindStringIndex(html); loc != nil {
		return html[:loc[0]] + style + html[loc[0]:]
	}
	return "<!DOCTYPE html><html><head>" + style + "</head><body>" + html + "</body></html>"
}
