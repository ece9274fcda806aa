package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formz/pkg/logger"
	"github.com/dmitrymomot/formz/pkg/submission"
)

// SubmitFunc sends the form values. It should honour ctx cancellation.
type SubmitFunc func(ctx context.Context, values Values) error

type attemptKey struct{}

// AttemptKey is the context key holding the uuid.UUID of the running
// submission attempt. Pass it to logger.WithContextValue.
var AttemptKey = attemptKey{}

// AttemptID returns the submission attempt id stored in ctx.
func AttemptID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AttemptKey).(uuid.UUID)
	return id, ok
}

// Store holds the current signup state. Every change replaces the field
// snapshot; the submission status lives only in the tracker. It is safe for
// concurrent use.
type Store struct {
	mu         sync.RWMutex
	initial    State
	state      State
	tracker    *submission.Tracker
	bcryptCost int
	log        *slog.Logger
}

// NewStore returns a store holding the initial state described by cfg.
func NewStore(cfg Config, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	s := &Store{
		initial:    NewState(cfg),
		tracker:    submission.NewTracker(),
		bcryptCost: cost,
		log:        log,
	}
	s.state = s.initial
	return s
}

// State returns the current snapshot with the tracker's status.
func (s *Store) State() State {
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()
	st.Status = s.tracker.Current()
	return st
}

// Edit replaces the named field with a dirty field holding value.
func (s *Store) Edit(ctx context.Context, name, value string) (State, error) {
	s.mu.Lock()
	next, err := s.state.With(name, value)
	if err != nil {
		s.mu.Unlock()
		return s.State(), err
	}
	s.state = next
	s.mu.Unlock()

	next.Status = s.tracker.Current()
	s.log.DebugContext(ctx, "field edited",
		slog.String("field", name),
		logger.Form(next.Form()),
	)
	return next, nil
}

// Submit validates the form, hashes the password and sends the values with fn.
// An invalid form is marked touched so all errors become visible, and
// ErrInvalidForm is returned. A submit while another one is running or after
// success returns ErrDuplicateSubmission.
func (s *Store) Submit(ctx context.Context, fn SubmitFunc) error {
	s.mu.Lock()
	if s.state.Form().IsNotValid() {
		s.state = s.state.Touched()
		st := s.state
		s.mu.Unlock()
		s.log.InfoContext(ctx, "submit rejected", logger.Form(st.Form()))
		return ErrInvalidForm
	}
	st := s.state
	s.mu.Unlock()

	values, err := st.Values(s.bcryptCost)
	if err != nil {
		return err
	}

	if _, err := s.tracker.Fire(submission.Submit); err != nil {
		if submission.IsTransitionRejected(err) {
			return errors.Join(ErrDuplicateSubmission, err)
		}
		return err
	}

	ctx = context.WithValue(ctx, AttemptKey, uuid.New())
	s.log.InfoContext(ctx, "submitting form")

	sendErr := fn(ctx, values)
	switch {
	case sendErr == nil:
		status, err := s.tracker.Fire(submission.Succeed)
		if err != nil {
			return fmt.Errorf("record submission success: %w", err)
		}
		s.log.InfoContext(ctx, "form submitted", logger.Status(status))
		return nil
	case errors.Is(sendErr, context.Canceled):
		if _, err := s.tracker.Fire(submission.Cancel); err != nil {
			return errors.Join(ErrSubmissionCanceled, sendErr, err)
		}
		s.log.InfoContext(ctx, "submission canceled")
		return errors.Join(ErrSubmissionCanceled, sendErr)
	default:
		if _, err := s.tracker.Fire(submission.Fail); err != nil {
			return errors.Join(fmt.Errorf("submit signup form: %w", sendErr), err)
		}
		s.log.ErrorContext(ctx, "submission failed", logger.Error(sendErr))
		return fmt.Errorf("submit signup form: %w", sendErr)
	}
}

// Reset restores the initial state and submission status. It returns
// ErrSubmissionInProgress and leaves the state untouched while a submission
// is running.
func (s *Store) Reset(ctx context.Context) (State, error) {
	if _, err := s.tracker.Fire(submission.Reset); err != nil {
		if submission.IsTransitionRejected(err) {
			return s.State(), errors.Join(ErrSubmissionInProgress, err)
		}
		return s.State(), err
	}

	s.mu.Lock()
	s.state = s.initial
	s.mu.Unlock()

	s.log.DebugContext(ctx, "form reset")
	return s.State(), nil
}
