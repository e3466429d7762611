// Package edifact provides rendering of interchanges back to EDIFACT text.
//
// This file converts an Interchange into its textual form. Component values
// are escaped; segment tags are written verbatim and rejected with
// ErrUnrenderableTag when they would read back differently. Message and
// interchange trailers are generated from the content, so Tokenize(Render(ic))
// yields an interchange equal to ic.
package edifact

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/coop-care/paid-edifact/internal/parser"
	"github.com/coop-care/paid-edifact/internal/tokenizer"
)

// Render converts an interchange to EDIFACT bytes with default delimiters.
//
// A UNA segment is written only if the interchange uses a decimal notation
// mark other than ','.
//
// Example:
//
//	ic, _ := edifact.Tokenize("UNB+UNOC:3+1+2+20211011:1030+123'UNZ+0+123'")
//	out, _ := edifact.Render(ic)
//	// out: UNB+UNOC:3+1+2+20211011:1030+123'UNZ+0+123'
func Render(ic *Interchange) ([]byte, error) {
	opts := DefaultRenderOptions()
	if ic != nil && ic.DecimalNotation != 0 {
		opts.Delimiters.Decimal = ic.DecimalNotation
	}
	return RenderWithOptions(ic, opts)
}

// RenderWithOptions converts an interchange to EDIFACT bytes with custom options.
//
// Tags are not escaped. A tag that contains a delimiter of opts, ends with
// the escape character, or starts with a line break the tokenizer would drop
// is reported as ErrUnrenderableTag.
//
// Example:
//
//	opts := edifact.DefaultRenderOptions()
//	opts.Delimiters.Terminator = '~'
//	opts.Newline = "\n"
//	out, err := edifact.RenderWithOptions(ic, opts)
func RenderWithOptions(ic *Interchange, opts RenderOptions) ([]byte, error) {
	if ic == nil {
		return []byte{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	w := &segmentWriter{
		scanner: tokenizer.NewScanner(opts.Delimiters),
		newline: opts.Newline,
	}

	if opts.ServiceStringAdvice || opts.Delimiters != DefaultDelimiters() {
		w.writeServiceStringAdvice()
	}

	if err := w.writeSegment(opts.InterchangeOpen, ic.Header); err != nil {
		return nil, err
	}
	for _, m := range ic.Messages {
		if err := w.writeSegment(opts.MessageOpen, m.Header); err != nil {
			return nil, err
		}
		for _, seg := range m.Segments {
			if err := w.writeSegment(seg.Tag, seg.Elements); err != nil {
				return nil, err
			}
		}
		trailer := []Element{
			{strconv.Itoa(len(m.Segments) + 2)},
			{m.Reference()},
		}
		if err := w.writeSegment(opts.MessageClose, trailer); err != nil {
			return nil, err
		}
	}
	trailer := []Element{
		{strconv.Itoa(len(ic.Messages))},
		{ic.ControlReference()},
	}
	if err := w.writeSegment(opts.InterchangeClose, trailer); err != nil {
		return nil, err
	}

	return w.buf.Bytes(), nil
}

// segmentWriter writes segments with one set of delimiters.
type segmentWriter struct {
	buf     bytes.Buffer
	scanner tokenizer.Scanner
	newline string
}

func (w *segmentWriter) writeServiceStringAdvice() {
	d := w.scanner.Delimiters()
	w.buf.WriteString(tokenizer.ServiceStringAdvice)
	w.buf.WriteRune(d.Component)
	w.buf.WriteRune(d.Element)
	w.buf.WriteRune(d.Decimal)
	w.buf.WriteRune(d.Escape)
	w.buf.WriteByte(' ')
	w.buf.WriteRune(d.Terminator)
	w.buf.WriteString(w.newline)
}

func (w *segmentWriter) writeSegment(tag string, elements []Element) error {
	if err := w.checkTag(tag); err != nil {
		return err
	}

	d := w.scanner.Delimiters()
	w.buf.WriteString(tag)
	for _, element := range elements {
		w.buf.WriteRune(d.Element)
		for i, component := range element {
			if i > 0 {
				w.buf.WriteRune(d.Component)
			}
			w.buf.WriteString(w.scanner.Escape(component))
		}
	}
	w.buf.WriteRune(d.Terminator)
	w.buf.WriteString(w.newline)
	return nil
}

// checkTag tokenizes tag between two terminators, the way it appears in the
// output, and fails unless it reads back as the same tag without elements.
func (w *segmentWriter) checkTag(tag string) error {
	d := w.scanner.Delimiters()
	text := string(d.Terminator) + w.newline + tag + string(d.Terminator)

	pieces := w.scanner.Split(text, tokenizer.TokenTerminator)
	if len(pieces) == 3 && pieces[1].Raw == tag {
		seg := parser.ParseSegment(w.scanner, tag)
		if seg.Tag == tag && len(seg.Elements) == 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnrenderableTag, tag)
}
