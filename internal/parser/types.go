package parser

import "strings"

// Element is an ordered list of components. Components are un-escaped.
type Element []string

// Component returns the component at index i.
func (e Element) Component(i int) (string, bool) {
	if i < 0 || i >= len(e) {
		return "", false
	}
	return e[i], true
}

// Value returns the first component, or "" for an element without components.
func (e Element) Value() string {
	if len(e) == 0 {
		return ""
	}
	return e[0]
}

// String joins the components with ':' for display. It does not escape.
func (e Element) String() string {
	return strings.Join(e, ":")
}

// Segment is a tagged list of elements.
type Segment struct {
	Tag      string
	Elements []Element
}

// Element returns the element at index i (0 is the first element after the tag).
func (s Segment) Element(i int) (Element, bool) {
	if i < 0 || i >= len(s.Elements) {
		return nil, false
	}
	return s.Elements[i], true
}

// Component returns component j of element i.
func (s Segment) Component(i, j int) (string, bool) {
	e, ok := s.Element(i)
	if !ok {
		return "", false
	}
	return e.Component(j)
}

// Message is the content between a UNH segment and its UNT segment.
type Message struct {
	// Header holds the elements of the UNH segment.
	Header []Element
	// Segments excludes the UNH and UNT segments.
	Segments []Segment
}

// Reference returns the message reference number (UNH element 1).
func (m Message) Reference() string {
	return headerComponent(m.Header, 0, 0)
}

// Type returns the message type identifier (UNH element 2, component 1).
func (m Message) Type() string {
	return headerComponent(m.Header, 1, 0)
}

// SegmentsByTag returns the segments with the given tag in document order.
func (m Message) SegmentsByTag(tag string) []Segment {
	var out []Segment
	for _, seg := range m.Segments {
		if seg.Tag == tag {
			out = append(out, seg)
		}
	}
	return out
}

// Interchange is a tokenized interchange.
type Interchange struct {
	// Header holds the elements of the UNB segment.
	Header   []Element
	Messages []Message
	// DecimalNotation is the decimal mark declared by UNA, ',' by default.
	DecimalNotation rune
}

// SyntaxIdentifier returns the syntax identifier, e.g. "UNOC" (UNB element 1, component 1).
func (ic *Interchange) SyntaxIdentifier() string {
	return headerComponent(ic.Header, 0, 0)
}

// SyntaxVersion returns the syntax version number (UNB element 1, component 2).
func (ic *Interchange) SyntaxVersion() string {
	return headerComponent(ic.Header, 0, 1)
}

// Sender returns the sender identification (UNB element 2, component 1).
func (ic *Interchange) Sender() string {
	return headerComponent(ic.Header, 1, 0)
}

// Recipient returns the recipient identification (UNB element 3, component 1).
func (ic *Interchange) Recipient() string {
	return headerComponent(ic.Header, 2, 0)
}

// ControlReference returns the interchange control reference (UNB element 5).
func (ic *Interchange) ControlReference() string {
	return headerComponent(ic.Header, 4, 0)
}

func headerComponent(header []Element, i, j int) string {
	if i < 0 || i >= len(header) {
		return ""
	}
	c, _ := header[i].Component(j)
	return c
}
