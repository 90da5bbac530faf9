package legalindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/legalindex"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("accepts supported formats", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"text", "json", "csv", "xml", "md", "pdf"} {
			f, err := legalindex.ParseFormat(s)
			require.NoError(t, err)
			assert.Equal(t, legalindex.Format(s), f)
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		f, err := legalindex.ParseFormat("JSON")

		require.NoError(t, err)
		assert.Equal(t, legalindex.FormatJSON, f)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		_, err := legalindex.ParseFormat("docx")

		require.Error(t, err)
		assert.Equal(t, legalindex.EUNSUPPORTED, legalindex.ErrorCode(err))
	})
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want legalindex.Format
	}{
		{"index.json", legalindex.FormatJSON},
		{"out/index.CSV", legalindex.FormatCSV},
		{"index.xml", legalindex.FormatXML},
		{"index.md", legalindex.FormatMarkdown},
		{"index.pdf", legalindex.FormatPDF},
		{"index.txt", legalindex.FormatText},
		{"index", legalindex.FormatText},
		{"index.docx", legalindex.FormatText},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, legalindex.FormatFromPath(tt.path))
		})
	}
}
