package typesystem

import "fmt"

// UnifyError reports that two types could not be made equal.
type UnifyError struct {
	Expected Type
	Actual   Type
	Reason   error
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}

func (e *UnifyError) Unwrap() error {
	return e.Reason
}
