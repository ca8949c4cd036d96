package typename

import "go/token"

// Ident is an identifier together with the location it was written at.
// Tokenizers and decoders implement it on their own node types so that
// their values can be passed directly to [ToTypeIdent].
type Ident interface {
	Text() string
	Location() Location
}

// Name is an immutable, syntactically valid identifier. Use [NewName] to
// construct one.
type Name struct {
	text string
	loc  Location
}

var _ Ident = Name{}

// NewName returns a Name for text tagged with loc. It returns an
// [*InvalidIdentifierError] if text is not a valid identifier.
func NewName(text string, loc Location) (Name, error) {
	if !IsIdentifier(text) {
		return Name{}, &InvalidIdentifierError{Text: text, Location: loc}
	}
	return Name{text: text, loc: loc}, nil
}

// Text returns the identifier text.
func (n Name) Text() string { return n.text }

// Location returns the location the name is tagged with.
func (n Name) Location() Location { return n.loc }

// String returns the identifier text.
func (n Name) String() string { return n.text }

// IsIdentifier reports whether s is a valid identifier: a non-empty
// sequence of ASCII letters, ASCII digits, and underscores that does not
// begin with a digit and is not a Go keyword.
func IsIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return !token.IsKeyword(s)
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
