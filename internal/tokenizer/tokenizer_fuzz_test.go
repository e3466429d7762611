//go:build go1.18
// +build go1.18

package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzScanner tests the scanner with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzScanner -fuzztime=30s ./internal/tokenizer
func FuzzScanner(f *testing.F) {
	seeds := []string{
		"",
		"?",
		"'",
		"'\r\n",
		"UNB+UNOC:3'",
		"???:?+?,?'",
		"a'\n\nb'",
		"UNA:+.? '",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		s := NewScanner(DefaultDelimiters())
		pieces := s.Split(input, TokenTerminator)
		if len(pieces) == 0 {
			t.Fatal("Split returned no pieces")
		}

		_, _, _ = ResolveDelimiters(input)

		if !utf8.ValidString(input) {
			return
		}

		// Raw pieces never exceed the input they came from.
		total := 0
		for _, p := range pieces {
			total += len(p.Raw)
			if !strings.Contains(input, p.Raw) {
				t.Fatalf("piece %q not found in input %q", p.Raw, input)
			}
		}
		if total > len(input) {
			t.Fatalf("pieces are longer (%d) than input (%d)", total, len(input))
		}
	})
}
