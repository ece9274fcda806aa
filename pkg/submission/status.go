package submission

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the submission status of a form.
type Status uint8

const (
	// Initial means the form has not been submitted yet.
	Initial Status = iota
	// InProgress means the form is being submitted.
	InProgress
	// Success means the form was submitted successfully.
	Success
	// Failure means the submission failed.
	Failure
	// Canceled means the submission was canceled.
	Canceled
)

var statusNames = [...]string{
	Initial:    "initial",
	InProgress: "in_progress",
	Success:    "success",
	Failure:    "failure",
	Canceled:   "canceled",
}

// Statuses returns all statuses in declaration order.
func Statuses() []Status {
	return []Status{Initial, InProgress, Success, Failure, Canceled}
}

func (s Status) String() string {
	if !s.IsKnown() {
		return fmt.Sprintf("status(%d)", uint8(s))
	}
	return statusNames[s]
}

// IsKnown reports whether s is one of the five declared statuses.
func (s Status) IsKnown() bool {
	return int(s) < len(statusNames)
}

// Exactly one of the predicates below holds for a known status.
func (s Status) IsInitial() bool    { return s == Initial }
func (s Status) IsInProgress() bool { return s == InProgress }
func (s Status) IsSuccess() bool    { return s == Success }
func (s Status) IsFailure() bool    { return s == Failure }
func (s Status) IsCanceled() bool   { return s == Canceled }

// IsInProgressOrSuccess reports whether a submission is running or has
// succeeded. Use it to show a loading indicator or to block duplicate submits.
func (s Status) IsInProgressOrSuccess() bool {
	return s.IsInProgress() || s.IsSuccess()
}

// ParseStatus returns the status with the given name. Matching ignores case
// and surrounding whitespace.
func ParseStatus(name string) (Status, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range statusNames {
		if sn == n {
			return Status(i), nil
		}
	}
	return Initial, errors.Join(ErrUnknownStatus, fmt.Errorf("status %q", name))
}

// MarshalText implements encoding.TextMarshaler so statuses log by name.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsKnown() {
		return nil, ErrUnknownStatus
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseStatus.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
