package domain_test

import (
	"testing"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"

	"github.com/stretchr/testify/require"
)

func TestLookupPaperSize(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		a4, err := domain.LookupPaperSize("a4")
		require.NoError(t, err)

		upper, err := domain.LookupPaperSize("A4")
		require.NoError(t, err)
		require.Equal(t, a4, upper)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := domain.LookupPaperSize("B9")
		require.ErrorIs(t, err, domain.ErrUnknownPageSize)
	})
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"pixels", "96px", 1},
		{"bare number is pixels", "48", 0.5},
		{"inches", "2in", 2},
		{"centimeters", "2.54cm", 1},
		{"millimeters", "25.4mm", 1},
		{"empty is zero", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseLength(tt.in)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := domain.ParseLength("wide")
		require.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := domain.ParseLength("-5px")
		require.Error(t, err)
	})
}

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty defaults", "", "document.pdf"},
		{"appends suffix", "invoice", "invoice.pdf"},
		{"keeps existing suffix", "report.pdf", "report.pdf"},
		{"case insensitive suffix", "report.PDF", "report.PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.NormalizeFilename(tt.in))
		})
	}
}
