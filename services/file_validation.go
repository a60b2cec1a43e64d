package services

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxUploadSize caps proofs and customer replacement files.
const MaxUploadSize = 10 << 20

const svgMediaType = "image/svg+xml"

var allowedUploadTypes = map[string][]string{
	".png":  {"image/png"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".webp": {"image/webp"},
	".pdf":  {"application/pdf"},
	".svg":  {svgMediaType},
}

func invalidFile(format string, args ...any) error {
	return &ServiceError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf(format, args...),
		Err:        ErrInvalidFile,
	}
}

// ValidateUpload checks an upload by extension, size and sniffed content.
// head is the first bytes of the file (up to 512 are used). It returns the
// detected content type.
func ValidateUpload(filename string, size int64, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed, ok := allowedUploadTypes[ext]
	if !ok {
		return "", invalidFile("%q is not an allowed file type", ext)
	}
	if size <= 0 {
		return "", invalidFile("%s is empty", filename)
	}
	if size > MaxUploadSize {
		return "", invalidFile("%s exceeds 10MB", filename)
	}

	if len(head) > 512 {
		head = head[:512]
	}

	// SVG sniffs as text/xml, text/plain or text/html depending on its
	// prolog, so look for the root element instead.
	if ext == ".svg" {
		if bytes.Contains(bytes.ToLower(head), []byte("<svg")) {
			return svgMediaType, nil
		}
		return "", invalidFile("%s is not an SVG document", filename)
	}

	sniffed := http.DetectContentType(head)
	mediaType := strings.TrimSpace(strings.SplitN(sniffed, ";", 2)[0])
	for _, a := range allowed {
		if mediaType == a {
			return mediaType, nil
		}
	}
	return "", invalidFile("%s content is %s", filename, mediaType)
}
