// Package parser recognizes the pieces of a JavaScript/TypeScript import
// block: blank lines, comments and import declarations.
//
// Every matcher takes the remaining input and returns the unconsumed suffix,
// the matched value and whether it matched. On failure the input is returned
// unchanged.
package parser

import "strings"

// spaces skips a run of spaces and tabs.
func spaces(input string) string {
	return strings.TrimLeft(input, " \t")
}

// lineEnding matches "\n" or "\r\n".
func lineEnding(input string) (string, bool) {
	switch {
	case strings.HasPrefix(input, "\n"):
		return input[1:], true
	case strings.HasPrefix(input, "\r\n"):
		return input[2:], true
	default:
		return input, false
	}
}

// BlankLine matches an optional run of spaces and tabs followed by a line ending.
func BlankLine(input string) (string, bool) {
	rest, ok := lineEnding(spaces(input))
	if !ok {
		return input, false
	}
	return rest, true
}
