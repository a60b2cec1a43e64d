package services

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHead  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHead = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	pdfHead  = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3")
	webpHead = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
	svgHead  = []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"></svg>`)
	xmlHead  = []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
)

// Sniffs as text/html because of the leading comment.
var commentedSVGHead = []byte(`<!-- Generator: Illustrator --><svg xmlns="http://www.w3.org/2000/svg"></svg>`)

func TestValidateUploadAccepts(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"proof.png", pngHead, "image/png"},
		{"proof.JPG", jpegHead, "image/jpeg"},
		{"proof.jpeg", jpegHead, "image/jpeg"},
		{"proof.pdf", pdfHead, "application/pdf"},
		{"proof.webp", webpHead, "image/webp"},
		{"logo.svg", svgHead, "image/svg+xml"},
		{"logo.svg", xmlHead, "image/svg+xml"},
		{"commented.svg", commentedSVGHead, "image/svg+xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUpload(tt.name, 1024, tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUploadRejects(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		head     []byte
	}{
		{"wrong extension", "proof.gif", 1024, []byte("GIF89a")},
		{"no extension", "proof", 1024, pngHead},
		{"too large", "proof.png", MaxUploadSize + 1, pngHead},
		{"empty", "proof.png", 0, nil},
		{"content mismatch", "proof.png", 1024, pdfHead},
		{"html as svg", "logo.svg", 1024, []byte("<html><body>hi</body></html>")},
		{"plain text as svg", "logo.svg", 1024, []byte("just some notes")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateUpload(tt.filename, tt.size, tt.head)
			assert.ErrorIs(t, err, ErrInvalidFile)
			status, msg := ResponseFor(err, "unexpected")
			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEqual(t, "unexpected", msg)
		})
	}
}

func TestValidateUploadAtLimit(t *testing.T) {
	_, err := ValidateUpload("big.png", MaxUploadSize, bytes.Clone(pngHead))
	assert.NoError(t, err)
}
