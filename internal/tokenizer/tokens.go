// Package tokenizer provides EDIFACT tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for EDIFACT interchanges.
//
// Note: The tokenizer emits character-level tokens only. Which separator is a
// split point is decided by the Scanner, not by the tokenizer.
const (
	// Structural tokens
	TokenComponentSeparator = "ComponentSeparator" // : (between components)
	TokenElementSeparator   = "ElementSeparator"   // + (between elements)
	TokenTerminator         = "Terminator"         // ' (end of segment)
	TokenLineBreak          = "LineBreak"          // \n, \r or \r\n

	// Release token: the escape character plus the character it releases
	TokenRelease = "Release" // ?x

	// Content token
	TokenText = "Text" // any run of non-special characters
)
