package statement

// Kind tags the variant held by a Statement.
type Kind int

const (
	ImportStatement Kind = iota
	CommentStatement
)

// Statement is one renderable line of an import block: either an import
// or a standalone comment. Exactly one of Import and Comment is set,
// matching Kind.
type Statement struct {
	Kind    Kind
	Import  Import
	Comment Comment
}

// NewImport wraps an import.
func NewImport(imp Import) Statement {
	return Statement{Kind: ImportStatement, Import: imp}
}

// NewComment wraps a standalone comment.
func NewComment(c Comment) Statement {
	return Statement{Kind: CommentStatement, Comment: c}
}

// Code renders the wrapped value.
func (s Statement) Code() string {
	switch s.Kind {
	case ImportStatement:
		return s.Import.Code()
	case CommentStatement:
		return s.Comment.Code()
	default:
		return ""
	}
}
