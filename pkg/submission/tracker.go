package submission

import (
	"fmt"
	"sync"
)

// Event names a step of the submission workflow.
type Event string

const (
	Submit  Event = "submit"
	Succeed Event = "succeed"
	Fail    Event = "fail"
	Cancel  Event = "cancel"
	Reset   Event = "reset"
)

// Observer is called after every accepted transition, outside the tracker lock.
// Observers of concurrent transitions may run in any order; Current is the
// authoritative status.
type Observer func(from, to Status)

// Option configures a Tracker.
type Option func(*Tracker)

// WithStatus starts the tracker from s instead of Initial.
// Unknown statuses are ignored.
func WithStatus(s Status) Option {
	return func(t *Tracker) {
		if s.IsKnown() {
			t.current = s
		}
	}
}

// OnChange registers an observer. Nil observers are ignored.
func OnChange(fn Observer) Option {
	return func(t *Tracker) {
		if fn != nil {
			t.observers = append(t.observers, fn)
		}
	}
}

// transitions maps event -> from -> to. Reset is refused while a submission
// is in progress; cancel it first.
var transitions = map[Event]map[Status]Status{
	Submit: {
		Initial:  InProgress,
		Failure:  InProgress,
		Canceled: InProgress,
	},
	Succeed: {InProgress: Success},
	Fail:    {InProgress: Failure},
	Cancel:  {InProgress: Canceled},
	Reset: {
		Initial:  Initial,
		Success:  Initial,
		Failure:  Initial,
		Canceled: Initial,
	},
}

// Tracker holds the submission status of one form and applies events to it.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.RWMutex
	current   Status
	observers []Observer
}

// NewTracker returns a tracker in the Initial status unless WithStatus says otherwise.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{current: Initial}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current returns the status the tracker is in.
func (t *Tracker) Current() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// CanFire reports whether event would be accepted in the current status.
func (t *Tracker) CanFire(event Event) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok, _ := next(t.current, event)
	return ok
}

// Fire applies event and returns the new status.
func (t *Tracker) Fire(event Event) (Status, error) {
	t.mu.Lock()
	from := t.current
	to, ok, err := next(from, event)
	if err != nil {
		t.mu.Unlock()
		return from, err
	}
	if !ok {
		t.mu.Unlock()
		return from, NewErrTransitionRejected(from, event)
	}
	t.current = to
	observers := t.observers
	t.mu.Unlock()

	for _, fn := range observers {
		fn(from, to)
	}
	return to, nil
}

func next(from Status, event Event) (Status, bool, error) {
	byFrom, ok := transitions[event]
	if !ok {
		return from, false, fmt.Errorf("%w: %q", ErrUnknownEvent, string(event))
	}
	to, ok := byFrom[from]
	return to, ok, nil
}
