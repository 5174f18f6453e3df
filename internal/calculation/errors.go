package calculation

import "errors"

// DomainError reports inputs outside the domain of a calculation, such as a
// non-positive pay period count.
type DomainError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// IsDomainError reports whether err wraps a *DomainError
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
