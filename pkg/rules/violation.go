package rules

import "github.com/dmitrymomot/formz/pkg/field"

// Numeric is the constraint for numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Violation describes why a value failed a rule.
type Violation struct {
	Key     string
	Message string
	Params  map[string]any
}

func (v Violation) Error() string {
	return v.Message
}

// Is matches violations by translation key.
func (v Violation) Is(target error) bool {
	t, ok := target.(Violation)
	return ok && t.Key == v.Key
}

func violation(key, message string, params map[string]any) *Violation {
	return field.Invalid(Violation{Key: key, Message: message, Params: params})
}

// First combines rules into one that returns the first failure in order.
// Remaining rules are not evaluated once one fails.
func First[T, E any](rs ...field.Rule[T, E]) field.Rule[T, E] {
	return func(value T) *E {
		for _, r := range rs {
			if r == nil {
				continue
			}
			if err := r(value); err != nil {
				return err
			}
		}
		return nil
	}
}
