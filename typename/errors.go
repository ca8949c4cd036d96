package typename

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is matched by every [*InvalidIdentifierError] when
// using [errors.Is].
var ErrInvalidIdentifier = errors.New("invalid identifier")

// InvalidIdentifierError is returned when text cannot be represented as a
// valid identifier.
type InvalidIdentifierError struct {
	Text     string   // Rejected identifier text.
	Location Location // Location the identifier would have been tagged with.
}

func (e *InvalidIdentifierError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("invalid identifier %q", e.Text)
	}
	return fmt.Sprintf("%s: invalid identifier %q", e.Location, e.Text)
}

// Is reports whether target is [ErrInvalidIdentifier].
func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}
