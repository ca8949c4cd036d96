package typename

import "strconv"

// Location identifies where an identifier was written. It is an opaque,
// comparable value that is carried alongside identifier text and never
// inspected by the conversion functions. The zero value means the location
// is unknown.
type Location struct {
	file   string
	line   int
	column int
}

// NewLocation returns a Location for the given file path and 1-based line
// and column. Any of the values may be left empty.
func NewLocation(file string, line, column int) Location {
	return Location{file: file, line: line, column: column}
}

// File returns the file path of the location.
func (l Location) File() string { return l.file }

// Line returns the 1-based line number, or 0 if unknown.
func (l Location) Line() int { return l.line }

// Column returns the 1-based column number, or 0 if unknown.
func (l Location) Column() int { return l.column }

// IsZero reports whether l carries no location information.
func (l Location) IsZero() bool { return l == Location{} }

// String formats the location as file:line:column, omitting the parts that
// are unknown.
func (l Location) String() string {
	s := l.file
	if l.line > 0 {
		if s != "" {
			s += ":"
		}
		s += strconv.Itoa(l.line)
		if l.column > 0 {
			s += ":" + strconv.Itoa(l.column)
		}
	}
	if s == "" {
		return "<unknown>"
	}
	return s
}
