// Package edifact provides interchange header sniffing.
package edifact

import (
	"github.com/coop-care/paid-edifact/internal/parser"
	"github.com/coop-care/paid-edifact/internal/tokenizer"
)

// Sniffer reads the delimiters and the interchange header from the start of
// an interchange without tokenizing the rest of it.
type Sniffer struct {
	sample   string
	delims   Delimiters
	advice   bool
	header   Segment
	found    bool
	err      error
	analyzed bool
}

// NewSniffer creates a new Sniffer with a sample of an interchange.
// The sample must contain the UNA segment, if any, and the complete UNB
// segment; a few hundred bytes are enough.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{
		sample:   sample,
		analyzed: false,
	}
}

// analyze resolves the delimiters and reads the first segment.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.analyzed = true

	d, offset, err := tokenizer.ResolveDelimiters(s.sample)
	if err != nil {
		s.delims = DefaultDelimiters()
		s.err = err
		return
	}
	s.delims = d
	s.advice = offset > 0

	scanner := tokenizer.NewScanner(d)
	pieces := scanner.Split(s.sample[offset:], tokenizer.TokenTerminator)
	if len(pieces) < 2 {
		// The first segment is not terminated within the sample.
		return
	}
	s.header = parser.ParseSegment(scanner, pieces[0].Raw)
	s.found = true
}

// Delimiters returns the delimiters declared by the UNA segment, or the
// defaults if there is none or it is malformed.
func (s *Sniffer) Delimiters() Delimiters {
	s.analyze()
	return s.delims
}

// HasServiceStringAdvice returns true if the sample starts with a UNA segment.
func (s *Sniffer) HasServiceStringAdvice() bool {
	s.analyze()
	return s.advice
}

// Err returns the error from reading a malformed UNA segment.
func (s *Sniffer) Err() error {
	s.analyze()
	return s.err
}

// Header returns the first segment after the UNA segment. It is false if
// the sample does not contain a terminated segment.
func (s *Sniffer) Header() (Segment, bool) {
	s.analyze()
	return s.header, s.found
}

// SyntaxIdentifier returns the syntax identifier, e.g. "UNOC".
func (s *Sniffer) SyntaxIdentifier() string {
	return s.interchange().SyntaxIdentifier()
}

// SyntaxVersion returns the syntax version number, e.g. "3".
func (s *Sniffer) SyntaxVersion() string {
	return s.interchange().SyntaxVersion()
}

// Sender returns the sender identification.
func (s *Sniffer) Sender() string {
	return s.interchange().Sender()
}

// Recipient returns the recipient identification.
func (s *Sniffer) Recipient() string {
	return s.interchange().Recipient()
}

// ControlReference returns the interchange control reference.
func (s *Sniffer) ControlReference() string {
	return s.interchange().ControlReference()
}

// interchange wraps the sniffed header so the Interchange accessors apply.
func (s *Sniffer) interchange() *Interchange {
	s.analyze()
	if !s.found || s.header.Tag != DefaultOptions().InterchangeOpen {
		return &Interchange{}
	}
	return &Interchange{Header: s.header.Elements, DecimalNotation: s.delims.Decimal}
}
