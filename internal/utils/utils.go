// Package utils provides common utility functions for data validation.
//
// This package contains utilities for working with instrument identifiers,
// including validating stock codes against the constraints of the storage
// encoding.
package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Error definitions for validation functions
var (
	ErrEmptyCode     = errors.New("stock code cannot be empty")
	ErrDelimiterCode = errors.New("stock code cannot contain the encoding delimiter ','")
)

// ValidateStockCode validates that an instrument code is usable as a storage
// key and as the leading field of the comma-separated wire encoding.
//
// The encoding defines no escaping, so a code containing a comma can never
// round-trip; such codes are out of contract and rejected up front rather
// than silently mangled. Whitespace-only codes are treated as empty.
func ValidateStockCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrEmptyCode
	}

	if strings.ContainsRune(code, ',') {
		return fmt.Errorf("%w: %q", ErrDelimiterCode, code)
	}

	for _, r := range code {
		if unicode.IsControl(r) {
			return fmt.Errorf("stock code %q contains control character", code)
		}
	}

	return nil
}
