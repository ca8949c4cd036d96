// Package typename converts snake_case identifiers, such as struct field
// names, into PascalCase identifiers suitable for Go type and enum constant
// names.
//
// The conversion splits the input on underscores, drops empty segments,
// uppercases the first ASCII letter of each segment, and joins the segments
// without a separator:
//
//	typename.ToTypeName("foo_bar")            // "FooBar"
//	typename.ToTypeName("_leading_underscore") // "LeadingUnderscore"
//
// [ToTypeIdent] performs the same conversion on an [Ident] and returns a new
// [Name] carrying a caller-supplied [Location], so code generators can report
// diagnostics against the position where the original name was written.
package typename
