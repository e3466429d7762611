//go:build go1.18
// +build go1.18

package parser

import (
	"errors"
	"testing"
)

// FuzzParser tests the parser with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzParser -fuzztime=30s ./internal/parser
func FuzzParser(f *testing.F) {
	// Add seed corpus with valid and broken interchanges
	seeds := []string{
		"",
		"UNA",
		"UNA:+.? '",
		"UNB+1'UNZ+0+1'",
		"UNB+UNOC:3+1+2+20211011:1030+123'UNZ+0+123'",
		"UNB+1'UNH+1+X'BGM'UNT+3+1'UNZ+1+1'",
		"UNB+1'UNH+1+X'UNZ+1+1'",
		"UNB+1'\r\nUNZ+0+1'\r\n",
		"UNB+???:?+?,?''UNZ+0'",
		`UNA,|_\ ;UNB|1;UNZ|0|1;`,
		"UNB+1'UNZ+0+1?",
		"?",
		"''",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// The parser should never panic, regardless of input
		ic, err := NewParser(input).Parse()
		if err != nil {
			if ic != nil {
				t.Fatalf("partial result returned with error %v", err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			return
		}
		if ic.Messages == nil {
			t.Fatal("Messages is nil")
		}
	})
}
