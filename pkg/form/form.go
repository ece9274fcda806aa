package form

import "github.com/dmitrymomot/formz/pkg/field"

// Validatable is implemented by application state that owns a set of fields.
type Validatable interface {
	Inputs() []field.Input
}

// Form is an immutable, ordered collection of inputs.
type Form struct {
	inputs []field.Input
}

// New creates a form over inputs. The slice is copied and nil inputs are
// skipped, so later changes to the caller's slice do not affect the form.
func New(inputs ...field.Input) Form {
	cp := make([]field.Input, 0, len(inputs))
	for _, in := range inputs {
		if in != nil {
			cp = append(cp, in)
		}
	}
	return Form{inputs: cp}
}

// Of creates a form from the inputs reported by v.
func Of(v Validatable) Form {
	if v == nil {
		return Form{}
	}
	return New(v.Inputs()...)
}

// Inputs returns a copy of the form inputs in insertion order.
func (f Form) Inputs() []field.Input {
	cp := make([]field.Input, len(f.inputs))
	copy(cp, f.inputs)
	return cp
}

// Len returns the number of inputs.
func (f Form) Len() int {
	return len(f.inputs)
}

// IsValid reports whether every input is valid. An empty form is valid.
func (f Form) IsValid() bool {
	return AllValid(f.inputs)
}

// IsNotValid reports whether at least one input is invalid.
func (f Form) IsNotValid() bool {
	return !f.IsValid()
}

// IsPure reports whether no input has been modified.
func (f Form) IsPure() bool {
	return AllPure(f.inputs)
}

// IsPristine is a synonym for IsPure.
func (f Form) IsPristine() bool {
	return f.IsPure()
}

// IsDirty reports whether at least one input has been modified.
func (f Form) IsDirty() bool {
	return !f.IsPure()
}

// InvalidCount returns the number of inputs that fail validation.
func (f Form) InvalidCount() int {
	n := 0
	for _, in := range f.inputs {
		if !in.IsValid() {
			n++
		}
	}
	return n
}

// AllValid reports whether every input is valid.
func AllValid(inputs []field.Input) bool {
	for _, in := range inputs {
		if in != nil && !in.IsValid() {
			return false
		}
	}
	return true
}

// AllPure reports whether every input is pure.
func AllPure(inputs []field.Input) bool {
	for _, in := range inputs {
		if in != nil && !in.IsPure() {
			return false
		}
	}
	return true
}
