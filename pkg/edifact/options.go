// Package edifact provides configurable options for tokenizing and rendering.
package edifact

import (
	"github.com/coop-care/paid-edifact/internal/parser"
)

// Options configures tokenizing.
type Options struct {
	// InterchangeOpen is the tag of the first segment. Default: "UNB"
	InterchangeOpen string

	// InterchangeClose is the tag of the last segment. Default: "UNZ"
	InterchangeClose string

	// MessageOpen is the tag that starts a message. Default: "UNH"
	MessageOpen string

	// MessageClose is the tag that ends a message. Default: "UNT"
	MessageClose string

	// GroupOpen is the tag that starts a functional group. Functional group
	// segments are skipped; they only matter for trailer validation.
	// Empty disables group counting. Default: "UNG"
	GroupOpen string

	// ValidateTrailers checks that UNT declares the segment count and message
	// reference of its message, and that UNZ declares the message (or group)
	// count and the UNB control reference.
	// Default: false
	ValidateTrailers bool
}

// DefaultOptions returns the default tokenizing configuration.
func DefaultOptions() Options {
	return Options{
		InterchangeOpen:  "UNB",
		InterchangeClose: "UNZ",
		MessageOpen:      "UNH",
		MessageClose:     "UNT",
		GroupOpen:        "UNG",
		ValidateTrailers: false,
	}
}

// Validate checks if the options are valid.
// Envelope tags must be non-empty and distinct.
func (o Options) Validate() error {
	tags := []struct {
		field string
		tag   string
	}{
		{"InterchangeOpen", o.InterchangeOpen},
		{"InterchangeClose", o.InterchangeClose},
		{"MessageOpen", o.MessageOpen},
		{"MessageClose", o.MessageClose},
		{"GroupOpen", o.GroupOpen},
	}

	for i, a := range tags {
		if a.tag == "" {
			if a.field == "GroupOpen" {
				continue
			}
			return &OptionsError{Field: a.field, Message: "empty tag"}
		}
		for _, b := range tags[i+1:] {
			if a.tag == b.tag {
				return &OptionsError{Field: b.field, Message: "tag " + b.tag + " already used by " + a.field}
			}
		}
	}
	return nil
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{
		InterchangeOpen:  o.InterchangeOpen,
		InterchangeClose: o.InterchangeClose,
		MessageOpen:      o.MessageOpen,
		MessageClose:     o.MessageClose,
		GroupOpen:        o.GroupOpen,
		ValidateTrailers: o.ValidateTrailers,
	}
}

// RenderOptions configures rendering.
type RenderOptions struct {
	// Delimiters are used for the output. A UNA segment is written when they
	// differ from DefaultDelimiters().
	Delimiters Delimiters

	// ServiceStringAdvice writes a UNA segment even for default delimiters.
	// Default: false
	ServiceStringAdvice bool

	// Newline is written after every segment terminator: "", "\n", "\r\n" or "\r".
	// Default: "" (one line)
	Newline string

	// Envelope tags. Defaults: "UNB", "UNZ", "UNH", "UNT"
	InterchangeOpen  string
	InterchangeClose string
	MessageOpen      string
	MessageClose     string
}

// DefaultRenderOptions returns the default rendering configuration.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Delimiters:          DefaultDelimiters(),
		ServiceStringAdvice: false,
		Newline:             "",
		InterchangeOpen:     "UNB",
		InterchangeClose:    "UNZ",
		MessageOpen:         "UNH",
		MessageClose:        "UNT",
	}
}

// Validate checks if the render options are valid.
func (o RenderOptions) Validate() error {
	if err := o.Delimiters.Validate(); err != nil {
		return &OptionsError{Field: "Delimiters", Message: err.Error()}
	}
	switch o.Newline {
	case "", "\n", "\r\n", "\r":
	default:
		return &OptionsError{Field: "Newline", Message: "must be a line break or empty"}
	}
	for _, tag := range []struct{ field, tag string }{
		{"InterchangeOpen", o.InterchangeOpen},
		{"InterchangeClose", o.InterchangeClose},
		{"MessageOpen", o.MessageOpen},
		{"MessageClose", o.MessageClose},
	} {
		if tag.tag == "" {
			return &OptionsError{Field: tag.field, Message: "empty tag"}
		}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "edifact: invalid " + e.Field + ": " + e.Message
}
