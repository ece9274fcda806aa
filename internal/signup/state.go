package signup

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/formz/pkg/field"
	"github.com/dmitrymomot/formz/pkg/form"
	"github.com/dmitrymomot/formz/pkg/rules"
	"github.com/dmitrymomot/formz/pkg/submission"
)

// Field names accepted by State.With.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

var (
	Name  = field.NewKind(FieldName, rules.First(rules.Required(), rules.MaxLen(64)))
	Email = field.NewCachedKind(FieldEmail, rules.First(rules.Required(), rules.Email()))
)

// PasswordKind returns the password field kind for the given minimum length.
func PasswordKind(minLen int) field.Kind[string, rules.Violation] {
	return field.NewKind(FieldPassword, rules.First(rules.Required(), rules.MinLen(minLen)))
}

// State is one immutable snapshot of the signup form.
type State struct {
	Name     field.Field[string, rules.Violation]
	Email    field.CachedField[string, rules.Violation]
	Password field.Field[string, rules.Violation]
	Status   submission.Status
}

// Values is the payload sent on submit. The password never leaves the state
// in plain text.
type Values struct {
	Name         string
	Email        string
	PasswordHash []byte
}

// NewState returns the initial state described by cfg.
func NewState(cfg Config) State {
	return State{
		Name:     Name.Pure(""),
		Email:    Email.New(cfg.PrefillEmail, !cfg.PrefillTouched),
		Password: PasswordKind(cfg.MinPasswordLength).Pure(""),
		Status:   submission.Initial,
	}
}

func (s State) Inputs() []field.Input {
	return []field.Input{s.Name, s.Email, s.Password}
}

func (s State) Form() form.Form {
	return form.Of(s)
}

// Values returns the submit payload with the password hashed at the given
// bcrypt cost.
func (s State) Values(cost int) (Values, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password.Value()), cost)
	if err != nil {
		return Values{}, fmt.Errorf("hash password: %w", err)
	}
	return Values{
		Name:         s.Name.Value(),
		Email:        s.Email.Value(),
		PasswordHash: hash,
	}, nil
}

// With returns a copy of s where the named field holds the edited value.
func (s State) With(name, value string) (State, error) {
	switch name {
	case FieldName:
		s.Name = s.Name.WithValue(value)
	case FieldEmail:
		s.Email = s.Email.WithValue(value)
	case FieldPassword:
		s.Password = s.Password.WithValue(value)
	default:
		return s, NewErrUnknownField(name)
	}
	return s, nil
}

// Touched marks every field as edited without changing values, so a submit
// attempt reveals all errors.
func (s State) Touched() State {
	if s.Name.IsPure() {
		s.Name = s.Name.WithValue(s.Name.Value())
	}
	if s.Email.IsPure() {
		s.Email = s.Email.WithValue(s.Email.Value())
	}
	if s.Password.IsPure() {
		s.Password = s.Password.WithValue(s.Password.Value())
	}
	return s
}

// DisplayErrors returns the messages to render next to each field.
func (s State) DisplayErrors() map[string]string {
	out := map[string]string{}
	if v := s.Name.DisplayError(); v != nil {
		out[FieldName] = v.Message
	}
	if v := s.Email.DisplayError(); v != nil {
		out[FieldEmail] = v.Message
	}
	if v := s.Password.DisplayError(); v != nil {
		out[FieldPassword] = v.Message
	}
	return out
}
