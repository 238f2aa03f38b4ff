package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxLabelLength bounds vertex labels so they stay readable inside a node.
const maxLabelLength = 256

// ValidateLabel validates a vertex label read from a graph document.
//
// Validation rules:
//   - Label cannot be empty
//   - Maximum length of 256 characters
//   - No control characters or null bytes
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "vertex label cannot be empty")
	}

	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "vertex label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "vertex label contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates the path a visualization is written to.
// The path must name an .html or .htm file and must not contain null bytes.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return nil
	default:
		return New(ErrCodeInvalidPath, "output path must end in .html: %q", path)
	}
}

// ValidateGraphPath validates a graph document path and returns its format
// ("json" or "yaml") derived from the file extension.
func ValidateGraphPath(path string) (string, error) {
	if path == "" {
		return "", New(ErrCodeInvalidPath, "graph path cannot be empty")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", New(ErrCodeInvalidFormat, "unsupported graph file %q (must be .json, .yaml or .yml)", path)
	}
}
