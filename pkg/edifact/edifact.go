// Package edifact tokenizes UN/EDIFACT interchanges.
//
// An interchange is tokenized into a tree of interchange → messages →
// segments → elements → components. Delimiters are taken from the optional
// UNA service string advice, or default to ':', '+', ',', '?' and '\''.
// Release sequences are resolved, so component values are literal text.
//
// Tokenization is all or nothing: a malformed interchange yields an error and
// no partial result. Business semantics of segments are left to the caller.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
//
//	// Safe: Concurrent tokenizing
//	go func() { edifact.Tokenize(input1) }()
//	go func() { edifact.Tokenize(input2) }()
//
// # Tokenizing APIs
//
//   - Tokenize(string) - Tokenizes an interchange that is already a string
//   - TokenizeBytes([]byte) - Decodes raw bytes using the UNB syntax identifier first
//   - TokenizeReader(io.Reader) - Reads everything, then behaves like TokenizeBytes
//
// There is no streaming mode; the whole interchange is held in memory.
//
// # Example usage:
//
//	ic, err := edifact.Tokenize("UNB+UNOC:3+1+2+20211011:1030+123'UNZ+0+123'")
//	if err != nil {
//	    // reject the whole document
//	}
//	fmt.Println(ic.ControlReference()) // 123
package edifact

import (
	"fmt"
	"io"

	"github.com/coop-care/paid-edifact/internal/charset"
	"github.com/coop-care/paid-edifact/internal/parser"
)

// sniffSize is the number of leading bytes inspected to find the syntax identifier.
const sniffSize = 1024

// Tokenize tokenizes an interchange from a string with default options.
//
// Example:
//
//	ic, err := edifact.Tokenize("UNB+UNOC:3+1+2+20211011:1030+123'UNZ+0+123'")
//	// ic.Header[0] is Element{"UNOC", "3"}
func Tokenize(input string) (*Interchange, error) {
	return TokenizeWithOptions(input, DefaultOptions())
}

// TokenizeWithOptions tokenizes an interchange from a string with custom options.
//
// Example:
//
//	opts := edifact.DefaultOptions()
//	opts.ValidateTrailers = true
//	ic, err := edifact.TokenizeWithOptions(input, opts)
func TokenizeWithOptions(input string, opts Options) (*Interchange, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := parser.NewParserWithOptions(input, opts.parserOptions())
	return p.Parse()
}

// TokenizeBytes tokenizes an interchange from raw bytes with default options.
//
// The bytes are decoded according to the syntax identifier of the UNB
// segment (UNOC is ISO 8859-1, UNOW is UTF-8, ...). If no syntax identifier
// can be found the bytes are used as UTF-8.
func TokenizeBytes(data []byte) (*Interchange, error) {
	return TokenizeBytesWithOptions(data, DefaultOptions())
}

// TokenizeBytesWithOptions tokenizes raw bytes with custom options.
func TokenizeBytesWithOptions(data []byte, opts Options) (*Interchange, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	input, err := decode(data, opts)
	if err != nil {
		return nil, err
	}
	return parser.NewParserWithOptions(input, opts.parserOptions()).Parse()
}

// TokenizeReader reads the whole reader and tokenizes the result like TokenizeBytes.
func TokenizeReader(reader io.Reader) (*Interchange, error) {
	return TokenizeReaderWithOptions(reader, DefaultOptions())
}

// TokenizeReaderWithOptions reads the whole reader and tokenizes the result
// like TokenizeBytesWithOptions.
func TokenizeReaderWithOptions(reader io.Reader, opts Options) (*Interchange, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read interchange: %w", err)
	}
	return TokenizeBytesWithOptions(data, opts)
}

// Format returns the format identifier for this tokenizer.
func Format() string {
	return "EDIFACT"
}

// Validate checks if the input string is a well-formed interchange.
//
// Returns nil if the input tokenizes without error:
//
//	if err := edifact.Validate(input); err != nil {
//	    fmt.Println("Invalid interchange:", err)
//	}
func Validate(input string) error {
	_, err := Tokenize(input)
	return err
}

// ValidateWithOptions checks if the input string is a well-formed interchange
// with custom options. With ValidateTrailers set this includes the UNT and
// UNZ counts and references.
func ValidateWithOptions(input string, opts Options) error {
	_, err := TokenizeWithOptions(input, opts)
	return err
}

// decode converts raw interchange bytes to a string using the syntax
// identifier of the interchange header.
func decode(data []byte, opts Options) (string, error) {
	sample := data
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}

	s := NewSniffer(charset.Latin1(sample))
	header, ok := s.Header()
	if !ok || header.Tag != opts.InterchangeOpen {
		return string(data), nil
	}
	id, _ := header.Component(0, 0)
	if id == "" {
		return string(data), nil
	}

	out, err := charset.Decode(id, data)
	if err != nil {
		return "", fmt.Errorf("decode interchange: %w", err)
	}
	return out, nil
}
