// Package location represents source positions from the ingested AST
// document, as recorded in each node's loc attribute
// ("<file-id>,<startLine>,<startCol>,<endLine>,<endCol>").
package location

import "fmt"

// File is an entry from the document's files table.
type File struct {
	ID       int
	Path     string
	Language string
}

// Location is a span within a single File.
type Location struct {
	File                           *File
	StartLine, StartCol            int
	EndLine, EndCol                int
}

// String renders a short "path:line" form, used in reports.
func (l Location) String() string {
	if l.File == nil {
		return "-"
	}
	return fmt.Sprintf("%s:%d", l.File.Path, l.StartLine)
}

// Exact renders the full "path line:col,line:col" form.
func (l Location) Exact() string {
	if l.File == nil {
		return "-"
	}
	return fmt.Sprintf("%s %d:%d,%d:%d", l.File.Path, l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}
