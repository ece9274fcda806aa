package submission

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus = errors.New("unknown submission status")
	ErrUnknownEvent  = errors.New("unknown submission event")
)

// ErrTransitionRejected indicates the event is not allowed from the current status.
type ErrTransitionRejected struct {
	From  Status
	Event Event
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("event '%s' is not allowed in status '%s'", e.Event, e.From)
}

func NewErrTransitionRejected(from Status, event Event) *ErrTransitionRejected {
	return &ErrTransitionRejected{From: from, Event: event}
}

func IsTransitionRejected(err error) bool {
	var e *ErrTransitionRejected
	return errors.As(err, &e)
}
