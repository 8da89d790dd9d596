package parser

import (
	"strings"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/statement"
)

// SingleLineComment matches "// ..." up to, not including, the line ending.
func SingleLineComment(input string) (string, statement.Comment, bool) {
	rest := spaces(input)
	if !strings.HasPrefix(rest, "//") {
		return input, statement.Comment{}, false
	}
	rest = rest[2:]

	end := strings.IndexAny(rest, "\r\n")
	if end < 0 {
		end = len(rest)
	}
	return rest[end:], statement.Comment{Data: rest[:end], Kind: statement.SingleLine}, true
}

// MultiLineComment matches "/* ... */", stopping at the first "*/".
func MultiLineComment(input string) (string, statement.Comment, bool) {
	rest := spaces(input)
	if !strings.HasPrefix(rest, "/*") {
		return input, statement.Comment{}, false
	}
	rest = rest[2:]

	end := strings.Index(rest, "*/")
	if end < 0 {
		return input, statement.Comment{}, false
	}
	return rest[end+2:], statement.Comment{Data: rest[:end], Kind: statement.MultiLine}, true
}

// Comment matches a single-line comment, else a multi-line one.
func Comment(input string) (string, statement.Comment, bool) {
	if rest, c, ok := SingleLineComment(input); ok {
		return rest, c, true
	}
	return MultiLineComment(input)
}
