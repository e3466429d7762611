package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Piece is one part of a split text.
type Piece struct {
	// Raw is the text as it appears in the input, escape sequences included.
	// Raw pieces can be split again on a lower-level separator.
	Raw string
	// Value is the text with every release sequence replaced by the released character.
	Value string
	// Line and Column locate the first character of the piece (1-indexed),
	// relative to the start of the scanned text. "\n", "\r" and "\r\n" each
	// end one line.
	Line   int
	Column int
}

// Scanner splits text on one delimiter at a time, honoring the escape
// character. A Scanner is a value; it holds no state between calls.
type Scanner struct {
	delims Delimiters
}

// NewScanner creates a Scanner for the given delimiters.
func NewScanner(d Delimiters) Scanner {
	return Scanner{delims: d}
}

// Delimiters returns the delimiters the scanner splits on.
func (s Scanner) Delimiters() Delimiters {
	return s.delims
}

// Split splits text on every unescaped occurrence of the target token kind
// (TokenTerminator, TokenElementSeparator or TokenComponentSeparator).
//
// Rules, applied in a single left-to-right pass:
//   - a release sequence is never a split point; the released character is
//     kept literally in Value and the sequence is kept verbatim in Raw
//   - a line break directly after an unescaped terminator is dropped
//   - any other line break is content
//
// Like strings.Split, n separators yield n+1 pieces, so text ending in the
// target produces a trailing empty piece.
func (s Scanner) Split(text string, target string) []Piece {
	tok := NewTokenizerWithDelimiters(s.delims)
	tok.Initialize(text)

	pieces := make([]Piece, 0, 8)
	var raw, value strings.Builder
	line, column := 1, 1
	row, col := 1, 1
	started := false
	afterTerminator := false

	flush := func() {
		pieces = append(pieces, Piece{
			Raw:    raw.String(),
			Value:  value.String(),
			Line:   line,
			Column: column,
		})
		raw.Reset()
		value.Reset()
		started = false
	}

	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		kind := token.Kind()
		tokenRow, tokenCol := row, col
		if kind == TokenLineBreak {
			row, col = row+1, 1
		} else {
			col += utf8.RuneCountInString(token.ValueString())
		}

		if kind == TokenLineBreak && afterTerminator {
			afterTerminator = false
			continue
		}
		afterTerminator = kind == TokenTerminator

		if kind == target {
			if !started {
				line, column = tokenRow, tokenCol
			}
			flush()
			continue
		}

		if !started {
			line, column = tokenRow, tokenCol
			started = true
		}
		raw.WriteString(token.ValueString())
		value.WriteString(decode(token))
	}
	flush()

	return pieces
}

// Escape prefixes every delimiter and escape character in value with the
// escape character, so that Split followed by Value reproduces value.
func (s Scanner) Escape(value string) string {
	d := s.delims
	if !strings.ContainsFunc(value, func(r rune) bool { return isDelimiter(r, d) }) {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value) + 4)
	for _, r := range value {
		if isDelimiter(r, d) {
			sb.WriteRune(d.Escape)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// decode returns the literal text a token stands for.
func decode(token *tokenizer.Token) string {
	if token.Kind() != TokenRelease {
		return token.ValueString()
	}
	runes := []rune(token.ValueString())
	if len(runes) < 2 {
		return ""
	}
	return string(runes[1:])
}

func isDelimiter(r rune, d Delimiters) bool {
	return r == d.Component || r == d.Element || r == d.Escape || r == d.Terminator
}
