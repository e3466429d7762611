package edifact

import (
	"github.com/coop-care/paid-edifact/internal/parser"
	"github.com/coop-care/paid-edifact/internal/tokenizer"
)

// Interchange is a tokenized interchange: the UNB header elements, the
// messages in document order and the decimal notation mark.
type Interchange = parser.Interchange

// Message is the content of one UNH ... UNT pair. Header holds the UNH
// elements; Segments excludes UNH and UNT.
type Message = parser.Message

// Segment is a tag and its elements.
type Segment = parser.Segment

// Element is an ordered list of un-escaped components.
type Element = parser.Element

// Delimiters holds the service characters of an interchange.
type Delimiters = tokenizer.Delimiters

// DefaultDelimiters returns ':', '+', ',', '?' and '\'' for component
// separator, element separator, decimal notation, escape and terminator.
func DefaultDelimiters() Delimiters {
	return tokenizer.DefaultDelimiters()
}
