package formatter

import (
	"slices"
	"sort"
	"strings"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/statement"
)

// sourceImport is an import together with its position in the source.
type sourceImport struct {
	index int
	imp   statement.Import
}

// sortedImports returns the imports ordered by category then module.
// Equal keys keep their source order.
func (b *Block) sortedImports() []sourceImport {
	sorted := make([]sourceImport, len(b.Imports))
	for i, imp := range b.Imports {
		sorted[i] = sourceImport{index: i, imp: imp}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].imp.Less(sorted[j].imp)
	})
	return sorted
}

// Sorted returns a sorted copy of the imports.
func (b *Block) Sorted() []statement.Import {
	sorted := b.sortedImports()
	imports := make([]statement.Import, len(sorted))
	for i, s := range sorted {
		imports[i] = s.imp
	}
	return imports
}

// IsSorted reports whether the imports already are in canonical order.
func (b *Block) IsSorted() bool {
	return slices.EqualFunc(b.Imports, b.Sorted(), statement.Import.Equal)
}

// Render regenerates the file: the sorted import block followed by the
// remainder.
//
// A blank line separates categories. Leading comments stay on top of the
// block, comments found between imports are written right before the import
// that followed them in the source, and trailing comments come after a blank
// line below the last import. Lines end with the file's line ending.
func (b *Block) Render() string {
	var out strings.Builder
	sorted := b.sortedImports()
	eol := b.LineEnding
	if eol == "" {
		eol = "\n"
	}

	for i, s := range sorted {
		if i == 0 {
			writeComments(&out, b.CommentsAt(0), eol)
		} else if sorted[i-1].imp.Category() != s.imp.Category() {
			out.WriteString(eol)
		}
		if s.index > 0 {
			writeComments(&out, b.CommentsAt(s.index), eol)
		}
		writeStatement(&out, statement.NewImport(s.imp), eol)
	}

	if trailing := b.CommentsAt(len(sorted)); len(trailing) > 0 {
		if len(sorted) > 0 {
			out.WriteString(eol)
		}
		writeComments(&out, trailing, eol)
	} else if len(sorted) > 0 && b.Remainder != "" {
		out.WriteString(eol)
	}

	out.WriteString(b.Remainder)
	return out.String()
}

func writeComments(out *strings.Builder, comments []statement.Comment, eol string) {
	for _, c := range comments {
		writeStatement(out, statement.NewComment(c), eol)
	}
}

func writeStatement(out *strings.Builder, s statement.Statement, eol string) {
	out.WriteString(s.Code())
	out.WriteString(eol)
}
