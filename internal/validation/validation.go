// Package validation checks user-supplied paths and input sizes before they
// reach the file system or get buffered in memory.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Resource limits (CWE-400).
const (
	// MaxDocumentSize is the largest corpus document read into memory (256 MB).
	MaxDocumentSize = 256 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrTooLarge         = errors.New("document too large")
)

// ValidatePath checks an output path for length limits and invalid
// characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// CheckDocumentSize rejects documents larger than MaxDocumentSize.
func CheckDocumentSize(name string, size int64) error {
	if size > MaxDocumentSize {
		return fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, name, size, MaxDocumentSize)
	}
	return nil
}
