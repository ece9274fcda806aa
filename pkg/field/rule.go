package field

// Rule validates a value and returns nil when it is valid or a pointer to a
// domain specific error otherwise.
// Rules must be pure and total: the same value always yields the same result
// and no value makes the rule panic.
type Rule[T, E any] func(value T) *E

// Invalid returns a pointer to err, for rules that report a failure.
func Invalid[E any](err E) *E {
	return &err
}

func (r Rule[T, E]) check(value T) *E {
	if r == nil {
		return nil
	}
	return r(value)
}
