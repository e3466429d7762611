package parser

import (
	"errors"
	"fmt"

	"github.com/coop-care/paid-edifact/internal/tokenizer"
)

// Errors reported by the parser. Every error returned by Parse wraps one of them.
var (
	// ErrMalformedDelimiterMarker indicates a truncated or ambiguous UNA segment.
	ErrMalformedDelimiterMarker = tokenizer.ErrMalformedDelimiterMarker

	// ErrUnterminatedSegment indicates trailing content without a segment terminator.
	ErrUnterminatedSegment = errors.New("unterminated segment")

	// ErrMalformedEnvelope indicates a missing or misplaced UNB, UNZ, UNH or UNT segment.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrTrailerMismatch indicates a UNT or UNZ segment whose counts or
	// references disagree with the content. Only reported when trailer
	// validation is enabled.
	ErrTrailerMismatch = errors.New("trailer mismatch")
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	// Segment is the 1-indexed position of the offending segment after the
	// UNA segment, or 0 if the error is not tied to a segment.
	Segment int
	// Tag is the tag of the offending segment, if any.
	Tag string
	// Line is the line where the offending segment starts (1-indexed).
	Line int
	// Column is the column where the offending segment starts (1-indexed).
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Segment == 0 {
		return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in segment %d (%s) on line %d, column %d: %v",
		e.Segment, e.Tag, e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
