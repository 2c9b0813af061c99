package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrNilTable       = errors.New("input table is nil")
	ErrColumnNotFound = errors.New("column not found")

	// File errors
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrParseFailed       = errors.New("file could not be parsed as tabular data")
)

// Error constructors with context
func NewFileNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

func NewUnsupportedFormatError(extension string) error {
	return fmt.Errorf("%w: %q (expected .csv or .xlsx)", ErrUnsupportedFormat, extension)
}

func NewParseError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrParseFailed, path, err)
}

func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

// Error checking helpers
func IsFileNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrParseFailed)
}
