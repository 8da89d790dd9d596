package formatter

import (
	"strings"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/parser"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/statement"
)

// SlotPosition locates a run of comments relative to the imports of a block.
type SlotPosition int

const (
	BeforeFirstImport SlotPosition = iota
	BetweenImports
	AfterLastImport
)

// Slot holds the comments found at one place of the import block.
// Index is the number of imports that precede the comments in the source.
type Slot struct {
	Index    int
	Comments []statement.Comment
}

// Block is the result of scanning the head of a file.
type Block struct {
	Imports    []statement.Import // source order
	Slots      []Slot             // ordered by Index, at most one slot per Index
	Remainder  string             // unparsed text, verbatim
	LineEnding string             // "\r\n" when the file's first line ends so, else "\n"
}

// Scan consumes imports, comments and blank lines from the start of src.
// Blank lines are dropped; scanning stops at the first text none of the
// matchers recognize, which becomes the remainder.
func Scan(src string) *Block {
	b := &Block{LineEnding: lineEnding(src)}
	rest := src

	for {
		if after, imp, ok := parser.ImportStatement(rest); ok {
			b.Imports = append(b.Imports, imp)
			rest = after
		} else if after, c, ok := parser.Comment(rest); ok {
			b.addComment(c)
			rest = after
		} else if after, ok := parser.BlankLine(rest); ok {
			rest = after
		} else {
			break
		}
	}

	b.Remainder = rest
	return b
}

// lineEnding returns the line terminator of the first line of src.
func lineEnding(src string) string {
	if i := strings.IndexByte(src, '\n'); i > 0 && src[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

func (b *Block) addComment(c statement.Comment) {
	index := len(b.Imports)
	if n := len(b.Slots); n > 0 && b.Slots[n-1].Index == index {
		b.Slots[n-1].Comments = append(b.Slots[n-1].Comments, c)
		return
	}
	b.Slots = append(b.Slots, Slot{Index: index, Comments: []statement.Comment{c}})
}

// Position classifies the slot within a block of importCount imports.
// When the block has no import at all, every comment is trailing.
func (s Slot) Position(importCount int) SlotPosition {
	switch {
	case s.Index >= importCount:
		return AfterLastImport
	case s.Index == 0:
		return BeforeFirstImport
	default:
		return BetweenImports
	}
}

// CommentsAt returns the comments recorded before the import at index,
// or after the last import when index equals len(Imports).
func (b *Block) CommentsAt(index int) []statement.Comment {
	for _, s := range b.Slots {
		if s.Index == index {
			return s.Comments
		}
	}
	return nil
}

// IsDangerous reports whether a comment sits between two imports. Such a
// comment cannot be kept next to its neighbours once imports are reordered.
// Comments before the first or after the last import are safe.
func (b *Block) IsDangerous() bool {
	for _, s := range b.Slots {
		if s.Position(len(b.Imports)) == BetweenImports {
			return true
		}
	}
	return false
}
