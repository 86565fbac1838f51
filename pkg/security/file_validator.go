package security

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const MIMEPDF = "application/pdf"

// SniffLen is how many leading bytes DetectMIME needs.
const SniffLen = 3072

// allowedCVExtensions is compared case-insensitively.
var allowedCVExtensions = []string{".pdf"}

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Extension of the original filename, as given
	DetectedMIME string // Media type sniffed from the content
	Error        string // Error message if validation failed
}

// ValidateDeclared checks what the client claims about a CV upload:
// 1. the filename extension must be whitelisted
// 2. the declared media type must be application/pdf
//
// It needs no content, so it can run before the body is read.
func ValidateDeclared(filename, declaredMIME string) FileValidationResult {
	result := FileValidationResult{
		Extension: filepath.Ext(filepath.Base(filepath.ToSlash(filename))),
	}

	if !isAllowedExtension(result.Extension) {
		result.Error = "extension not allowed: " + result.Extension
		return result
	}

	if !IsPDFMediaType(declaredMIME) {
		result.Error = "media type not allowed: " + declaredMIME
		return result
	}

	result.Valid = true
	return result
}

// ValidateContent checks that the leading bytes are detected as PDF.
func ValidateContent(head []byte) FileValidationResult {
	result := FileValidationResult{DetectedMIME: DetectMIME(head)}
	if result.DetectedMIME != MIMEPDF {
		result.Error = "file content does not match declared type (detected " + result.DetectedMIME + ")"
		return result
	}
	result.Valid = true
	return result
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedCVExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// IsPDFMediaType compares a Content-Type header value against application/pdf,
// ignoring parameters and case.
func IsPDFMediaType(declared string) bool {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, MIMEPDF)
}

// DetectMIME returns the bare media type detected from the leading bytes.
func DetectMIME(head []byte) string {
	detected := mimetype.Detect(head).String()
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	return detected
}
