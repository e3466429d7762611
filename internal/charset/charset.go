// Package charset maps EDIFACT syntax identifiers to character encodings.
//
// The syntax identifier is the first component of the UNB segment's first
// element, e.g. UNOC for ISO 8859-1.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupported indicates a syntax identifier without a known encoding.
var ErrUnsupported = errors.New("unsupported character set")

// Level A and B are ISO 646 subsets; ISO 8859-1 decodes them unchanged and
// tolerates the stray Latin-1 bytes found in real files.
var encodings = map[string]encoding.Encoding{
	"UNOA": charmap.ISO8859_1,
	"UNOB": charmap.ISO8859_1,
	"UNOC": charmap.ISO8859_1,
	"UNOD": charmap.ISO8859_2,
	"UNOE": charmap.ISO8859_5,
	"UNOF": charmap.ISO8859_7,
	"UNOG": charmap.ISO8859_3,
	"UNOH": charmap.ISO8859_4,
	"UNOI": charmap.ISO8859_6,
	"UNOJ": charmap.ISO8859_8,
	"UNOK": charmap.ISO8859_9,
	"UNOW": unicode.UTF8,
	"UNOY": unicode.UTF8,
}

// Lookup returns the encoding for a syntax identifier. Identifiers are case-insensitive.
func Lookup(syntaxID string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToUpper(strings.TrimSpace(syntaxID))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, syntaxID)
	}
	return enc, nil
}

// Decode converts data in the encoding of syntaxID to a UTF-8 string.
func Decode(syntaxID string, data []byte) (string, error) {
	enc, err := Lookup(syntaxID)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", syntaxID, err)
	}
	return string(out), nil
}

// Encode converts s to the encoding of syntaxID. Characters the encoding
// cannot represent are an error.
func Encode(syntaxID string, s string) ([]byte, error) {
	enc, err := Lookup(syntaxID)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", syntaxID, err)
	}
	return out, nil
}

// Latin1 decodes data as ISO 8859-1. Every byte maps to one rune, so the
// result can be sniffed for ASCII service segments before the real
// character set is known.
func Latin1(data []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO 8859-1 decoding cannot fail.
		return string(data)
	}
	return string(out)
}
