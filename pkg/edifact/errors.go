// Package edifact provides error types for EDIFACT tokenizing.
package edifact

import (
	"errors"

	"github.com/coop-care/paid-edifact/internal/charset"
	"github.com/coop-care/paid-edifact/internal/parser"
)

// ParseError represents a tokenizing error with position information.
// Line and Column locate the start of the offending segment.
type ParseError = parser.ParseError

// Errors wrapped by every error this package returns for malformed input.
// Test with errors.Is.
var (
	// ErrMalformedDelimiterMarker indicates a UNA segment that is truncated
	// or declares ambiguous delimiters.
	ErrMalformedDelimiterMarker = parser.ErrMalformedDelimiterMarker

	// ErrUnterminatedSegment indicates content after the last segment terminator.
	ErrUnterminatedSegment = parser.ErrUnterminatedSegment

	// ErrMalformedEnvelope indicates a missing or misplaced UNB, UNZ, UNH or UNT segment.
	ErrMalformedEnvelope = parser.ErrMalformedEnvelope

	// ErrTrailerMismatch indicates inconsistent UNT or UNZ counts or references.
	// Only reported when Options.ValidateTrailers is set.
	ErrTrailerMismatch = parser.ErrTrailerMismatch

	// ErrUnsupportedCharset indicates a syntax identifier without a known encoding.
	ErrUnsupportedCharset = charset.ErrUnsupported

	// ErrUnrenderableTag indicates a segment tag that would not read back
	// unchanged with the render delimiters.
	ErrUnrenderableTag = errors.New("tag cannot be rendered with these delimiters")
)
