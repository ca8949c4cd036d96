package typename

import (
	"errors"
	"testing"
)

func TestToTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"foo_bar", "FooBar"},
		{"foo", "Foo"},
		{"a", "A"},
		{"_leading_underscore", "LeadingUnderscore"},
		{"trailing_underscore_", "TrailingUnderscore"},
		{"double__underscore", "DoubleUnderscore"},
		{"already_Mixed_case", "AlreadyMixedCase"},
		{"FooBar", "FooBar"},
		{"format_version", "FormatVersion"},
		{"ilm_policy", "IlmPolicy"},
		{"field_2fast", "Field2fast"},
		{"2fast", "2fast"},
		{"kebab-case", "Kebab-case"},
		{"___", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ToTypeName(tt.input)
			if got != tt.want {
				t.Errorf("ToTypeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToTypeIdent(t *testing.T) {
	srcLoc := NewLocation("fields.yml", 3, 5)
	dstLoc := NewLocation("types.go", 10, 1)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"foo_bar", "FooBar", false},
		{"foo", "Foo", false},
		{"_leading_underscore", "LeadingUnderscore", false},
		{"already_Mixed_case", "AlreadyMixedCase", false},
		{"a", "A", false},
		{"type", "Type", false},
		{"x_1", "X1", false},
		{"___", "", true},
		{"", "", true},
		{"2fast", "", true},
		{"_2fast", "", true},
		{"with-dash", "", true},
		{"white space", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			src := Name{text: tt.input, loc: srcLoc}

			got, err := ToTypeIdent(src, dstLoc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ToTypeIdent(%q) = %q, want error", tt.input, got.Text())
				}
				if !errors.Is(err, ErrInvalidIdentifier) {
					t.Errorf("error %v does not match ErrInvalidIdentifier", err)
				}
				var invalid *InvalidIdentifierError
				if !errors.As(err, &invalid) {
					t.Fatalf("error %T is not *InvalidIdentifierError", err)
				}
				if invalid.Location != dstLoc {
					t.Errorf("error location = %v, want %v", invalid.Location, dstLoc)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToTypeIdent(%q) unexpected error: %v", tt.input, err)
			}
			if got.Text() != tt.want {
				t.Errorf("ToTypeIdent(%q) = %q, want %q", tt.input, got.Text(), tt.want)
			}
			if got.Location() != dstLoc {
				t.Errorf("location = %v, want %v", got.Location(), dstLoc)
			}
		})
	}
}

func TestToTypeIdent_DoesNotModifySource(t *testing.T) {
	loc := NewLocation("a.yml", 1, 1)
	src, err := NewName("foo_bar", loc)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ToTypeIdent(src, Location{}); err != nil {
		t.Fatal(err)
	}
	if src.Text() != "foo_bar" || src.Location() != loc {
		t.Errorf("source changed to %q at %v", src.Text(), src.Location())
	}
}

func TestToTypeIdent_PascalCaseUnchanged(t *testing.T) {
	for _, s := range []string{"FooBar", "A", "HTTPServer", "X9"} {
		src, err := NewName(s, Location{})
		if err != nil {
			t.Fatal(err)
		}
		got, err := ToTypeIdent(src, Location{})
		if err != nil {
			t.Fatal(err)
		}
		if got.Text() != s {
			t.Errorf("ToTypeIdent(%q) = %q, want unchanged", s, got.Text())
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"foo", "Foo"},
		{"Foo", "Foo"},
		{"1foo", "1foo"},
		{" foo", " foo"},
		{"éclair", "éclair"},
	}

	for _, tt := range tests {
		if got := capitalizeFirst(tt.input); got != tt.want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
