package parser

import (
	"strings"
	"unicode"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/statement"
)

const (
	importKeyword = "import"
	fromKeyword   = "from"
)

// QuotedString matches a module specifier delimited by matching ' or ".
//
// Inside the quotes, \' \" \\ and \n escapes are accepted and returned as
// written, they are not decoded. Unescaped quotes of either kind end the
// string, and the empty string is rejected.
func QuotedString(input string) (string, string, bool) {
	if input == "" || (input[0] != '\'' && input[0] != '"') {
		return input, "", false
	}
	quote := input[0]

	for i := 1; i < len(input); i++ {
		switch c := input[i]; c {
		case '\\':
			if i+1 >= len(input) || !strings.ContainsRune(`'"n\`, rune(input[i+1])) {
				return input, "", false
			}
			i++
		case '\'', '"':
			if c != quote || i == 1 {
				return input, "", false
			}
			return input[i+1:], input[1:i], true
		}
	}
	return input, "", false
}

// ImportStatement matches one import declaration:
//
//	import x from 'module'; // optional comment
//	import { a, b } from "module"
//	import './side-effect.css';
//
// The bound names clause is kept as opaque, trimmed text.
func ImportStatement(input string) (string, statement.Import, bool) {
	if !strings.HasPrefix(input, importKeyword) {
		return input, statement.Import{}, false
	}
	rest := input[len(importKeyword):]
	afterKeyword := spaces(rest)
	if len(afterKeyword) == len(rest) {
		return input, statement.Import{}, false
	}
	rest = afterKeyword

	var imp statement.Import
	if _, _, direct := QuotedString(rest); !direct {
		at := findFromKeyword(rest)
		if at < 0 {
			return input, statement.Import{}, false
		}
		imp.Identifiers = strings.TrimSpace(rest[:at])
		if imp.Identifiers == "" {
			return input, statement.Import{}, false
		}
		rest = spaces(rest[at+len(fromKeyword):])
	}

	rest, module, ok := QuotedString(rest)
	if !ok {
		return input, statement.Import{}, false
	}
	imp.Module = module

	rest = strings.TrimPrefix(rest, ";")
	if after, c, ok := Comment(rest); ok {
		imp.Comment = &c
		rest = after
	}
	return rest, imp, true
}

// findFromKeyword returns the offset of the first standalone "from" word in
// input, or -1. A standalone word is preceded by whitespace or a closing
// brace and followed by whitespace or a quote. The search stops at the first
// ';' or quote, which cannot be part of a bound names clause, so it never
// runs into the next statement.
func findFromKeyword(input string) int {
	if end := strings.IndexAny(input, `;'"`); end >= 0 {
		// Keep the quote that may directly follow "from".
		input = input[:end+1]
	}
	for offset := 1; offset < len(input); {
		i := strings.Index(input[offset:], fromKeyword)
		if i < 0 {
			return -1
		}
		at := offset + i
		if isFromBoundary(input, at) {
			return at
		}
		offset = at + 1
	}
	return -1
}

func isFromBoundary(input string, at int) bool {
	before := rune(input[at-1])
	if !unicode.IsSpace(before) && before != '}' {
		return false
	}
	end := at + len(fromKeyword)
	if end >= len(input) {
		return false
	}
	after := rune(input[end])
	return unicode.IsSpace(after) || after == '\'' || after == '"'
}
