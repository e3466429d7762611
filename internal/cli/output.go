package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coop-care/paid-edifact/pkg/edifact"
)

type interchangeDoc struct {
	File            string       `json:"file,omitempty" yaml:"file,omitempty"`
	Header          [][]string   `json:"header" yaml:"header"`
	Messages        []messageDoc `json:"messages" yaml:"messages"`
	DecimalNotation string       `json:"decimalNotation" yaml:"decimalNotation"`
}

type messageDoc struct {
	Header   [][]string   `json:"header" yaml:"header"`
	Segments []segmentDoc `json:"segments" yaml:"segments"`
}

type segmentDoc struct {
	Tag      string     `json:"tag" yaml:"tag"`
	Elements [][]string `json:"elements" yaml:"elements,flow"`
}

func toDoc(path string, ic *edifact.Interchange) interchangeDoc {
	out := interchangeDoc{
		File:            path,
		Header:          elementsDoc(ic.Header),
		Messages:        make([]messageDoc, len(ic.Messages)),
		DecimalNotation: string(ic.DecimalNotation),
	}
	for i, m := range ic.Messages {
		msg := messageDoc{
			Header:   elementsDoc(m.Header),
			Segments: make([]segmentDoc, len(m.Segments)),
		}
		for j, seg := range m.Segments {
			msg.Segments[j] = segmentDoc{Tag: seg.Tag, Elements: elementsDoc(seg.Elements)}
		}
		out.Messages[i] = msg
	}
	return out
}

func elementsDoc(elements []edifact.Element) [][]string {
	out := make([][]string, len(elements))
	for i, e := range elements {
		out[i] = []string(e)
	}
	return out
}

// writeJSON encodes v with the configured indent; 0 writes compact JSON.
func writeJSON(w io.Writer, v any, indent int) error {
	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeYAML encodes v as one YAML document. Indents below 2 use 2.
func writeYAML(w io.Writer, v any, indent int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(max(indent, 2))
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return enc.Close()
}

// writeTree prints an indented outline of the interchange.
//
//	interchange 123 (UNOC 3) from SENDER to RECIPIENT
//	  message 1 SLGA
//	    FKT+01++123456789
func writeTree(w io.Writer, path string, ic *edifact.Interchange) {
	if path != "" {
		fmt.Fprintf(w, "%s:\n", path)
	}
	fmt.Fprintf(w, "interchange %s (%s %s) from %s to %s\n",
		ic.ControlReference(), ic.SyntaxIdentifier(), ic.SyntaxVersion(), ic.Sender(), ic.Recipient())
	for _, m := range ic.Messages {
		fmt.Fprintf(w, "  message %s %s\n", m.Reference(), m.Type())
		for _, seg := range m.Segments {
			fmt.Fprintf(w, "    %s\n", segmentLine(seg))
		}
	}
}

// segmentLine joins a segment for display. Values are not escaped.
func segmentLine(seg edifact.Segment) string {
	var b strings.Builder
	b.WriteString(seg.Tag)
	for _, e := range seg.Elements {
		b.WriteByte('+')
		b.WriteString(e.String())
	}
	return b.String()
}
