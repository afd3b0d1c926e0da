package cursor

import (
	"errors"
	"fmt"
)

// ErrMissingBounds means a hoverable element has no inner bounds element.
var ErrMissingBounds = errors.New("hoverable element has no bounds element")

// RegistrationError reports a hoverable element that could not be set up.
type RegistrationError struct {
	ElementID string
	Err       error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register hoverable %q: %v", e.ElementID, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
