package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adinvoice/internal/domain"
	"adinvoice/internal/service"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []domain.ExportFormat
	}{
		{"pdf", []domain.ExportFormat{domain.ExportFormatPDF}},
		{" XLSX ", []domain.ExportFormat{domain.ExportFormatXLSX}},
		{"csv", []domain.ExportFormat{domain.ExportFormatCSV}},
		{"both", []domain.ExportFormat{domain.ExportFormatPDF, domain.ExportFormatXLSX}},
		{"all", []domain.ExportFormat{domain.ExportFormatPDF, domain.ExportFormatXLSX, domain.ExportFormatCSV}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormats(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseFormats("docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path, err := save(dir, &service.Output{Filename: "Invoice_1.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Invoice_1.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}
