package signup

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidForm          = errors.New("form is not valid")
	ErrDuplicateSubmission  = errors.New("form is already submitted")
	ErrSubmissionCanceled   = errors.New("submission canceled")
	ErrSubmissionInProgress = errors.New("submission in progress")
)

// ErrUnknownField is returned when editing a field the form does not have.
type ErrUnknownField struct {
	Name string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown field '%s'", e.Name)
}

func NewErrUnknownField(name string) *ErrUnknownField {
	return &ErrUnknownField{Name: name}
}

func IsUnknownFieldError(err error) bool {
	var e *ErrUnknownField
	return errors.As(err, &e)
}
