// Package form aggregates field.Input values into a read-only view of overall
// validity and purity.
//
// A Form holds a fixed, ordered set of inputs. It is never modified: when any
// field changes, the application builds a new Form from its updated fields.
//
//	f := form.New(state.Name, state.Email)
//	if f.IsDirty() && f.IsValid() {
//	    // enable the submit button
//	}
//
// Application state structs can implement Validatable and be evaluated with Of:
//
//	type SignupState struct {
//	    Name  field.Field[string, NameError]
//	    Email field.CachedField[string, EmailError]
//	}
//
//	func (s SignupState) Inputs() []field.Input {
//	    return []field.Input{s.Name, s.Email}
//	}
//
//	form.Of(state).IsValid()
//
// Inputs are side-effect free, so reductions stop at the first failing input
// and the result does not depend on input order.
package form
