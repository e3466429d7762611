package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// checkMessageTrailer compares a UNT segment with its message.
//
//	UNT+<number of segments, UNH and UNT included>+<message reference>'
func (p *Parser) checkMessageTrailer(header, trailer located, segmentCount int) error {
	if err := checkCount(trailer.Segment, segmentCount+2, "segment"); err != nil {
		return p.segmentError(trailer, err)
	}

	want, _ := header.Component(0, 0)
	if got, _ := trailer.Component(1, 0); got != want {
		return p.segmentError(trailer, fmt.Errorf("%w: message reference %q, %s declares %q",
			ErrTrailerMismatch, got, header.Tag, want))
	}
	return nil
}

// checkInterchangeTrailer compares a UNZ segment with its interchange.
//
//	UNZ+<number of messages, or of functional groups if present>+<control reference>'
func (p *Parser) checkInterchangeTrailer(header, trailer located, inner []located, messageCount int) error {
	count, what := messageCount, "message"
	if groups := countTag(inner, p.opts.GroupOpen); groups > 0 {
		count, what = groups, "functional group"
	}
	if err := checkCount(trailer.Segment, count, what); err != nil {
		return p.segmentError(trailer, err)
	}

	want, _ := header.Component(4, 0)
	if got, _ := trailer.Component(1, 0); got != want {
		return p.segmentError(trailer, fmt.Errorf("%w: control reference %q, %s declares %q",
			ErrTrailerMismatch, got, header.Tag, want))
	}
	return nil
}

// checkCount compares the count in the first element of a trailer with want.
func checkCount(seg Segment, want int, what string) error {
	declared, _ := seg.Component(0, 0)
	got, err := strconv.Atoi(strings.TrimSpace(declared))
	if err != nil {
		return fmt.Errorf("%w: %s count %q is not a number", ErrTrailerMismatch, what, declared)
	}
	if got != want {
		return fmt.Errorf("%w: declares %d %ss, found %d", ErrTrailerMismatch, got, what, want)
	}
	return nil
}

func countTag(segments []located, tag string) int {
	if tag == "" {
		return 0
	}
	n := 0
	for _, seg := range segments {
		if seg.Tag == tag {
			n++
		}
	}
	return n
}
