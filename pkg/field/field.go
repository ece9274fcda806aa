package field

import "fmt"

// Input is the capability surface shared by every field regardless of its
// value and error types. Forms aggregate over it.
type Input interface {
	IsValid() bool
	IsPure() bool
}

// Field is an immutable form field value. The rule is evaluated on every read;
// see CachedField for a memoizing variant.
// The zero value is a pure field holding the zero T with no rule.
type Field[T comparable, E any] struct {
	kind  string
	value T
	dirty bool
	rule  Rule[T, E]
}

// New creates a pure field that has not been touched by the user.
func New[T comparable, E any](value T, rule Rule[T, E]) Field[T, E] {
	return Field[T, E]{value: value, rule: rule}
}

// NewDirty creates a field the user has already interacted with. Useful for
// prefilled values that should show validation errors right away.
func NewDirty[T comparable, E any](value T, rule Rule[T, E]) Field[T, E] {
	return Field[T, E]{value: value, dirty: true, rule: rule}
}

// Value returns the value the field was created with.
func (f Field[T, E]) Value() T {
	return f.value
}

// Kind returns the name of the kind the field was built from, empty for
// fields created with New or NewDirty.
func (f Field[T, E]) Kind() string {
	return f.kind
}

// IsPure reports whether the field is unmodified since the form was
// initialized.
func (f Field[T, E]) IsPure() bool {
	return !f.dirty
}

// IsPristine is a synonym for IsPure.
func (f Field[T, E]) IsPristine() bool {
	return !f.dirty
}

// IsDirty reports whether the user has edited the field.
func (f Field[T, E]) IsDirty() bool {
	return f.dirty
}

// Error runs the rule against the current value.
func (f Field[T, E]) Error() *E {
	return f.rule.check(f.value)
}

// IsValid reports whether the rule accepts the current value.
func (f Field[T, E]) IsValid() bool {
	return f.Error() == nil
}

// IsNotValid is the negation of IsValid.
func (f Field[T, E]) IsNotValid() bool {
	return !f.IsValid()
}

// DisplayError returns the error to show to the user: always nil while the
// field is pure, the rule result otherwise.
func (f Field[T, E]) DisplayError() *E {
	if !f.dirty {
		return nil
	}
	return f.Error()
}

// WithValue returns a dirty copy of the field holding value.
func (f Field[T, E]) WithValue(value T) Field[T, E] {
	return Field[T, E]{kind: f.kind, value: value, dirty: true, rule: f.rule}
}

// Reset returns a pure copy of the field holding value.
func (f Field[T, E]) Reset(value T) Field[T, E] {
	return Field[T, E]{kind: f.kind, value: value, rule: f.rule}
}

// Equal reports whether both fields are of the same kind and hold equal
// values with the same purity. Rules are not compared.
func (f Field[T, E]) Equal(other Field[T, E]) bool {
	return f.kind == other.kind && f.value == other.value && f.dirty == other.dirty
}

// Hash returns a hash of the value and purity consistent with Equal.
func (f Field[T, E]) Hash() uint64 {
	return hashOf(f.value, !f.dirty)
}

func (f Field[T, E]) String() string {
	return format(f.kind, f.value, !f.dirty)
}

func format(kind string, value any, pure bool) string {
	if kind == "" {
		kind = "field"
	}
	return fmt.Sprintf("%s(%v, pure=%t)", kind, value, pure)
}
