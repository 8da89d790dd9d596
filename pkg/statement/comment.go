package statement

import (
	"strings"
	"unicode"
)

// CommentKind distinguishes line comments from block comments.
type CommentKind int

const (
	SingleLine CommentKind = iota // "// ..."
	MultiLine                     // "/* ... */"
)

// Comment is a single comment token. Data is the text between the delimiters;
// multi-line comments keep their embedded line breaks.
type Comment struct {
	Data string
	Kind CommentKind
}

// Code renders the comment back to source text.
func (c Comment) Code() string {
	if c.Kind == MultiLine {
		return "/*" + c.Data + "*/"
	}
	return "//" + strings.TrimRightFunc(c.Data, unicode.IsSpace)
}
