// Package parser builds EDIFACT interchanges from scanned segments.
//
// Parsing runs in three stages over one input string:
//
//	Interchange = [ UNA ] UNB { Segment } UNZ ;
//	Segment     = Tag { ElementSeparator Element } Terminator ;
//	Element     = Component { ComponentSeparator Component } ;
//
// Messages (UNH ... UNT) are extracted from the segments between UNB and UNZ.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coop-care/paid-edifact/internal/tokenizer"
)

// Options configures the parser behavior.
type Options struct {
	// InterchangeOpen is the tag of the first segment. Default: "UNB"
	InterchangeOpen string
	// InterchangeClose is the tag of the last segment. Default: "UNZ"
	InterchangeClose string
	// MessageOpen is the tag that starts a message. Default: "UNH"
	MessageOpen string
	// MessageClose is the tag that ends a message. Default: "UNT"
	MessageClose string
	// GroupOpen is the tag that starts a functional group. Groups are not
	// returned, they only change what the interchange trailer counts. Default: "UNG"
	GroupOpen string
	// ValidateTrailers checks the counts and references declared by message
	// and interchange trailers. Default: false
	ValidateTrailers bool
}

// DefaultOptions returns default parser options.
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

// located is a segment with its position in the input.
type located struct {
	Segment
	index  int
	line   int
	column int
}

// Parser tokenizes one interchange. A Parser is not safe for concurrent use,
// but independent Parsers share nothing.
type Parser struct {
	input   string
	opts    Options
	delims  tokenizer.Delimiters
	scanner tokenizer.Scanner

	// position of the body relative to the start of input
	lineOffset   int
	columnOffset int
}

// NewParser creates a new parser for the given input string.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	return &Parser{
		input:  input,
		opts:   opts,
		delims: tokenizer.DefaultDelimiters(),
	}
}

// Delimiters returns the delimiters in effect. Before Parse is called these
// are the defaults.
func (p *Parser) Delimiters() tokenizer.Delimiters {
	return p.delims
}

// Parse tokenizes the input into an Interchange.
//
// Either the whole interchange is returned or an error; there are no partial
// results. Errors are *ParseError values wrapping one of the package's
// sentinel errors.
func (p *Parser) Parse() (*Interchange, error) {
	delims, offset, err := tokenizer.ResolveDelimiters(p.input)
	if err != nil {
		return nil, &ParseError{Line: 1, Column: 1, Err: err}
	}
	p.delims = delims
	p.scanner = tokenizer.NewScanner(delims)
	p.setBodyOffset(p.input[:offset])

	segments, err := p.parseSegments(p.input[offset:])
	if err != nil {
		return nil, err
	}

	return p.parseInterchange(segments)
}

// parseSegments splits the body into segments.
//
// Grammar:
//
//	Body = { Segment } ;
//
// The final terminator leaves one empty piece behind; anything else after
// the final terminator is an unterminated segment.
func (p *Parser) parseSegments(body string) ([]located, error) {
	pieces := p.scanner.Split(body, tokenizer.TokenTerminator)

	last := pieces[len(pieces)-1]
	if last.Raw != "" {
		line, column := p.position(last)
		tag := p.scanner.Split(last.Raw, tokenizer.TokenElementSeparator)[0].Raw
		return nil, &ParseError{
			Segment: len(pieces),
			Tag:     tag,
			Line:    line,
			Column:  column,
			Err:     fmt.Errorf("%w: %q is not followed by %q", ErrUnterminatedSegment, preview(last.Raw), p.delims.Terminator),
		}
	}
	pieces = pieces[:len(pieces)-1]

	segments := make([]located, 0, len(pieces))
	for i, piece := range pieces {
		segments = append(segments, p.parseSegment(piece, i+1))
	}
	return segments, nil
}

// parseSegment parses one terminated segment and records its position.
func (p *Parser) parseSegment(piece tokenizer.Piece, index int) located {
	line, column := p.position(piece)
	return located{
		Segment: ParseSegment(p.scanner, piece.Raw),
		index:   index,
		line:    line,
		column:  column,
	}
}

// ParseSegment parses the raw text of one segment, without its terminator.
//
// Grammar:
//
//	Segment = Tag { ElementSeparator Element } ;
//
// The tag is taken verbatim. Every further piece becomes one element, so
// consecutive separators yield elements holding one empty component.
func ParseSegment(s tokenizer.Scanner, raw string) Segment {
	tokens := s.Split(raw, tokenizer.TokenElementSeparator)

	seg := Segment{
		Tag:      tokens[0].Raw,
		Elements: make([]Element, 0, len(tokens)-1),
	}
	for _, token := range tokens[1:] {
		seg.Elements = append(seg.Elements, parseElement(s, token.Raw))
	}
	return seg
}

// parseElement parses one element.
//
// Grammar:
//
//	Element = Component { ComponentSeparator Component } ;
func parseElement(s tokenizer.Scanner, raw string) Element {
	components := s.Split(raw, tokenizer.TokenComponentSeparator)
	element := make(Element, len(components))
	for i, c := range components {
		element[i] = c.Value
	}
	return element
}

// parseInterchange checks the envelope and extracts the messages.
//
// Grammar:
//
//	Interchange = UNB { Segment } UNZ ;
func (p *Parser) parseInterchange(segments []located) (*Interchange, error) {
	openTag, closeTag := p.opts.InterchangeOpen, p.opts.InterchangeClose

	if len(segments) == 0 {
		return nil, &ParseError{
			Line:   p.lineOffset + 1,
			Column: p.columnOffset + 1,
			Err:    fmt.Errorf("%w: missing %s segment", ErrMalformedEnvelope, openTag),
		}
	}

	first := segments[0]
	if first.Tag != openTag {
		return nil, p.segmentError(first, fmt.Errorf("%w: expected %s as first segment, got %q",
			ErrMalformedEnvelope, openTag, first.Tag))
	}
	if len(segments) == 1 {
		return nil, p.segmentError(first, fmt.Errorf("%w: missing %s segment", ErrMalformedEnvelope, closeTag))
	}

	last := segments[len(segments)-1]
	if last.Tag != closeTag {
		return nil, p.segmentError(last, fmt.Errorf("%w: expected %s as last segment, got %q",
			ErrMalformedEnvelope, closeTag, last.Tag))
	}

	inner := segments[1 : len(segments)-1]
	for _, seg := range inner {
		if seg.Tag == openTag || seg.Tag == closeTag {
			return nil, p.segmentError(seg, fmt.Errorf("%w: misplaced %s segment", ErrMalformedEnvelope, seg.Tag))
		}
	}

	messages, err := p.parseMessages(inner)
	if err != nil {
		return nil, err
	}

	if p.opts.ValidateTrailers {
		if err := p.checkInterchangeTrailer(first, last, inner, len(messages)); err != nil {
			return nil, err
		}
	}

	return &Interchange{
		Header:          first.Elements,
		Messages:        messages,
		DecimalNotation: p.delims.Decimal,
	}, nil
}

// Message extraction states.
const (
	outsideMessage = iota
	insideMessage
)

// parseMessages groups segments into messages with a two-state loop.
// Segments outside any message (functional group headers and trailers) are
// skipped. Messages do not nest.
func (p *Parser) parseMessages(segments []located) ([]Message, error) {
	messages := make([]Message, 0, 4)

	state := outsideMessage
	var open located
	var current Message

	for _, seg := range segments {
		switch state {
		case outsideMessage:
			switch seg.Tag {
			case p.opts.MessageOpen:
				open = seg
				current = Message{Header: seg.Elements, Segments: make([]Segment, 0, 8)}
				state = insideMessage
			case p.opts.MessageClose:
				return nil, p.segmentError(seg, fmt.Errorf("%w: %s without %s",
					ErrMalformedEnvelope, p.opts.MessageClose, p.opts.MessageOpen))
			}

		case insideMessage:
			switch seg.Tag {
			case p.opts.MessageOpen:
				return nil, p.segmentError(open, fmt.Errorf("%w: message %q is not closed by %s before the next %s",
					ErrMalformedEnvelope, current.Reference(), p.opts.MessageClose, p.opts.MessageOpen))
			case p.opts.MessageClose:
				if p.opts.ValidateTrailers {
					if err := p.checkMessageTrailer(open, seg, len(current.Segments)); err != nil {
						return nil, err
					}
				}
				messages = append(messages, current)
				state = outsideMessage
			default:
				current.Segments = append(current.Segments, seg.Segment)
			}
		}
	}

	if state == insideMessage {
		return nil, p.segmentError(open, fmt.Errorf("%w: message %q has no %s segment",
			ErrMalformedEnvelope, current.Reference(), p.opts.MessageClose))
	}

	return messages, nil
}

// Helper methods

// setBodyOffset records where the body starts, given the consumed UNA prefix.
func (p *Parser) setBodyOffset(prefix string) {
	breaks := strings.Count(prefix, "\n") + strings.Count(prefix, "\r") - strings.Count(prefix, "\r\n")
	if breaks > 0 {
		p.lineOffset = breaks
		p.columnOffset = 0
		return
	}
	p.lineOffset = 0
	p.columnOffset = utf8.RuneCountInString(prefix)
}

// position converts a body-relative piece position to an input position.
func (p *Parser) position(piece tokenizer.Piece) (line, column int) {
	line = piece.Line + p.lineOffset
	column = piece.Column
	if piece.Line == 1 {
		column += p.columnOffset
	}
	return line, column
}

// segmentError attaches the position of seg to err.
func (p *Parser) segmentError(seg located, err error) *ParseError {
	return &ParseError{
		Segment: seg.index,
		Tag:     seg.Tag,
		Line:    seg.line,
		Column:  seg.column,
		Err:     err,
	}
}

// preview shortens s for error messages.
func preview(s string) string {
	const limit = 32
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
