package statement

import "strings"

// Import represents a single import declaration.
type Import struct {
	Identifiers string   // bound names clause, empty for side-effect imports
	Module      string   // module specifier, escapes kept verbatim
	Comment     *Comment // trailing comment on the same line
}

// Category returns the ordering bucket of the import.
func (i Import) Category() ImportCategory {
	return Category(i.Module)
}

// Less orders imports by category, then by module specifier.
// Identifiers and comments take no part in ordering.
func (i Import) Less(other Import) bool {
	ci, co := i.Category(), other.Category()
	if ci != co {
		return ci < co
	}
	return i.Module < other.Module
}

// Equal reports whether both imports are structurally identical.
func (i Import) Equal(other Import) bool {
	if i.Identifiers != other.Identifiers || i.Module != other.Module {
		return false
	}
	if i.Comment == nil || other.Comment == nil {
		return i.Comment == other.Comment
	}
	return *i.Comment == *other.Comment
}

// Code renders the import back to source text, always with single quotes
// and a terminating semicolon.
func (i Import) Code() string {
	var b strings.Builder
	b.WriteString("import ")
	if i.Identifiers != "" {
		b.WriteString(i.Identifiers)
		b.WriteString(" from ")
	}
	b.WriteString("'")
	b.WriteString(i.Module)
	b.WriteString("';")
	if i.Comment != nil {
		b.WriteString(" ")
		b.WriteString(i.Comment.Code())
	}
	return b.String()
}
