package tokenizer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// ServiceStringAdvice is the tag of the optional segment that declares the
// delimiters of an interchange.
const ServiceStringAdvice = "UNA"

// serviceCharacters is the number of characters following the UNA tag:
// component, element, decimal notation, escape, reserved, terminator.
const serviceCharacters = 6

// ErrMalformedDelimiterMarker indicates a UNA segment that cannot be read.
var ErrMalformedDelimiterMarker = errors.New("malformed service string advice")

// Delimiters holds the service characters of one interchange.
type Delimiters struct {
	// Component separates components within an element. Default: ':'
	Component rune
	// Element separates elements within a segment. Default: '+'
	Element rune
	// Decimal is the decimal notation mark. It is reported, never interpreted. Default: ','
	Decimal rune
	// Escape is the release character. Default: '?'
	Escape rune
	// Terminator ends a segment. Default: '\''
	Terminator rune
}

// DefaultDelimiters returns the delimiters that apply when no UNA segment is present.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Component:  ':',
		Element:    '+',
		Decimal:    ',',
		Escape:     '?',
		Terminator: '\'',
	}
}

// Validate checks that the structural delimiters can be told apart.
func (d Delimiters) Validate() error {
	named := []struct {
		name string
		r    rune
	}{
		{"component separator", d.Component},
		{"element separator", d.Element},
		{"escape character", d.Escape},
		{"segment terminator", d.Terminator},
	}

	for i, a := range named {
		if a.r == '\r' || a.r == '\n' || a.r == 0 || a.r == utf8.RuneError {
			return fmt.Errorf("invalid %s %q", a.name, a.r)
		}
		for _, b := range named[i+1:] {
			if a.r == b.r {
				return fmt.Errorf("%s and %s are both %q", a.name, b.name, a.r)
			}
		}
	}
	return nil
}

// ResolveDelimiters reads the optional UNA segment at the start of input.
//
// It returns the delimiters in effect and the byte offset at which segment
// scanning resumes. Without a UNA segment the defaults apply and the offset
// is 0. A terminator directly after the six service characters and one
// line-break sequence after that are consumed as part of the UNA segment.
func ResolveDelimiters(input string) (Delimiters, int, error) {
	stream := tokenizer.NewStream(input)
	if !stream.MatchChars([]rune(ServiceStringAdvice)) {
		return DefaultDelimiters(), 0, nil
	}
	offset := len(ServiceStringAdvice)

	var chars [serviceCharacters]rune
	for i := range chars {
		r, ok := stream.NextChar()
		if !ok {
			return Delimiters{}, 0, fmt.Errorf("%w: expected %d service characters after %s, got %d",
				ErrMalformedDelimiterMarker, serviceCharacters, ServiceStringAdvice, i)
		}
		chars[i] = r
		offset += runeSize(input, offset)
	}

	// chars[4] is reserved and ignored.
	d := Delimiters{
		Component:  chars[0],
		Element:    chars[1],
		Decimal:    chars[2],
		Escape:     chars[3],
		Terminator: chars[5],
	}
	if err := d.Validate(); err != nil {
		return Delimiters{}, 0, fmt.Errorf("%w: %v", ErrMalformedDelimiterMarker, err)
	}

	if r, ok := stream.PeekChar(); ok && r == d.Terminator {
		stream.NextChar()
		offset += runeSize(input, offset)
	}
	offset += skipLineBreak(stream)

	return d, offset, nil
}

// runeSize returns the byte length of the rune starting at offset. Invalid
// UTF-8 counts one byte per rune, as it does when decoding the stream.
func runeSize(input string, offset int) int {
	_, size := utf8.DecodeRuneInString(input[offset:])
	return size
}

// skipLineBreak consumes one \r\n, \r or \n and returns the number of bytes consumed.
func skipLineBreak(stream tokenizer.Stream) int {
	r, ok := stream.PeekChar()
	if !ok {
		return 0
	}
	switch r {
	case '\n':
		stream.NextChar()
		return 1
	case '\r':
		stream.NextChar()
		if next, ok := stream.PeekChar(); ok && next == '\n' {
			stream.NextChar()
			return 2
		}
		return 1
	}
	return 0
}
