package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for EDIFACT with the default delimiters.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithDelimiters(DefaultDelimiters())
}

// NewTokenizerWithDelimiters creates a tokenizer for the given delimiters.
// Matchers are tried in order:
// 1. Release (escape character plus the released character)
// 2. Line breaks (CRLF before CR and LF to match the longer sequence first)
// 3. Terminator, element separator, component separator
// 4. Text (everything else)
func NewTokenizerWithDelimiters(d Delimiters) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		ReleaseMatcher(d.Escape),

		tokenizer.StringMatcherFunc(TokenLineBreak, "\r\n"),
		tokenizer.StringMatcherFunc(TokenLineBreak, "\n"),
		tokenizer.StringMatcherFunc(TokenLineBreak, "\r"),

		tokenizer.StringMatcherFunc(TokenTerminator, string(d.Terminator)),
		tokenizer.StringMatcherFunc(TokenElementSeparator, string(d.Element)),
		tokenizer.StringMatcherFunc(TokenComponentSeparator, string(d.Component)),

		TextMatcher(d),
	)
}

// ReleaseMatcher matches the escape character together with the character
// following it. An escape character at the end of input yields a release
// token holding only the escape character.
func ReleaseMatcher(escape rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != escape {
			return nil
		}
		stream.NextChar()

		next, ok := stream.NextChar()
		if !ok {
			return tokenizer.NewToken(TokenRelease, []rune{escape})
		}
		return tokenizer.NewToken(TokenRelease, []rune{escape, next})
	}
}

// TextMatcher matches runs of characters that are neither a delimiter nor a
// line break.
//
// Performance: Uses ByteStream for fast ASCII scanning when every delimiter is ASCII.
func TextMatcher(d Delimiters) tokenizer.Matcher {
	ascii := d.Component < 128 && d.Element < 128 && d.Escape < 128 && d.Terminator < 128
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if ascii {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return textMatcherByte(byteStream, d)
			}
		}
		return textMatcherRune(stream, d)
	}
}

// textMatcherByte scans bytes. Multi-byte UTF-8 sequences never contain ASCII
// bytes, so they are consumed as text.
func textMatcherByte(stream tokenizer.ByteStream, d Delimiters) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}
		if isSpecial(rune(b), d) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenText, []rune(string(value)))
}

func textMatcherRune(stream tokenizer.Stream, d Delimiters) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if isSpecial(r, d) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenText, value)
}

func isSpecial(r rune, d Delimiters) bool {
	return r == d.Component || r == d.Element || r == d.Escape || r == d.Terminator ||
		r == '\n' || r == '\r'
}
