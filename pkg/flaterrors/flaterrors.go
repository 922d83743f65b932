// Package flaterrors joins errors into a single flat error.
//
// Unlike errors.Join, joining an already-joined error does not nest: the
// resulting error always unwraps to a flat list. This keeps error chains
// readable when sentinel errors are appended at each layer.
package flaterrors

import "strings"

type flatError struct {
	errs []error
}

// Join returns an error wrapping the given errors as a flat list.
// Nil errors are discarded. Errors that are themselves the result of a
// previous Join are flattened into the new list.
// Returns nil if every input is nil.
func Join(errs ...error) error {
	flat := make([]error, 0, len(errs))

	for _, err := range errs {
		if err == nil {
			continue
		}

		if fe, ok := err.(*flatError); ok {
			flat = append(flat, fe.errs...)
			continue
		}

		flat = append(flat, err)
	}

	if len(flat) == 0 {
		return nil
	}

	return &flatError{errs: flat}
}

func (e *flatError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, "\n")
}

// Unwrap makes the joined errors visible to errors.Is and errors.As.
func (e *flatError) Unwrap() []error {
	return e.errs
}
