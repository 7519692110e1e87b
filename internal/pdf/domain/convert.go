package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxHTMLBytes caps the size of a conversion request body.
const MaxHTMLBytes = 16 << 20 // 16 MiB

// PageSizeAuto sizes the page to the rendered content instead of a fixed
// paper format.
const PageSizeAuto = "auto"

// ConvertOptions are the rendering options for a single conversion, already
// validated and defaulted by the service layer.
type ConvertOptions struct {
	PageSize       string // paper format name, or PageSizeAuto
	Width          string // CSS length overriding the format width
	Height         string // CSS length overriding the format height
	Margin         string // uniform CSS length, "0" for none
	ViewportWidth  int
	ViewportHeight int
}

// PaperSize is a page geometry in inches, the unit the print backend expects.
type PaperSize struct {
	Width  float64
	Height float64
}

var paperSizes = map[string]PaperSize{
	"a3":      {11.7, 16.5},
	"a4":      {8.27, 11.7},
	"a5":      {5.83, 8.27},
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
}

// ErrUnknownPageSize reports a paper format name outside the supported set.
var ErrUnknownPageSize = errors.New("unknown page size")

// LookupPaperSize resolves a format name (case-insensitive) to its geometry.
func LookupPaperSize(name string) (PaperSize, error) {
	if ps, ok := paperSizes[strings.ToLower(name)]; ok {
		return ps, nil
	}
	return PaperSize{}, fmt.Errorf("%w: %q", ErrUnknownPageSize, name)
}

// ParseLength converts a CSS-style length ("100px", "2.5cm", "12mm",
// "0.4in" or a bare number meaning pixels) into inches.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	unit := "px"
	num := s
	for _, u := range []string{"px", "in", "cm", "mm"} {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSuffix(s, u)
			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative length %q", s)
	}

	switch unit {
	case "in":
		return v, nil
	case "cm":
		return v / 2.54, nil
	case "mm":
		return v / 25.4, nil
	default: // px at 96 dpi
		return v / 96, nil
	}
}

// NormalizeFilename defaults empty filenames and guarantees a .pdf suffix.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "document.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
