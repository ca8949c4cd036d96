package typename

import "strings"

// ToTypeName converts a snake_case string (e.g. "format_version") into
// PascalCase (e.g. "FormatVersion"). Empty segments produced by leading,
// trailing, or repeated underscores are dropped. Only the first character
// of each segment is changed, and only when it is an ASCII lowercase letter.
//
// The result is not validated; use [ToTypeIdent] when a valid identifier
// is required.
func ToTypeName(snakeCase string) string {
	var b strings.Builder
	b.Grow(len(snakeCase))
	for _, segment := range strings.Split(snakeCase, "_") {
		if segment == "" {
			continue
		}
		b.WriteString(capitalizeFirst(segment))
	}
	return b.String()
}

// ToTypeIdent converts the text of source into a PascalCase [Name] tagged
// with loc. The location of source itself is ignored. It returns an
// [*InvalidIdentifierError] if the converted text is not a valid
// identifier, e.g. when source is empty, contains only underscores, or
// begins with a digit.
func ToTypeIdent(source Ident, loc Location) (Name, error) {
	return NewName(ToTypeName(source.Text()), loc)
}

// capitalizeFirst uppercases the first byte of s if it is an ASCII
// lowercase letter.
func capitalizeFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
