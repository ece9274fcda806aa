package field

import "sync"

// CachedField behaves exactly like Field but evaluates its rule at most once.
// The value never changes, so the remembered result can never go stale.
// Copies of a CachedField share the cache.
type CachedField[T comparable, E any] struct {
	kind  string
	value T
	dirty bool
	rule  Rule[T, E]
	memo  *memo[E]
}

type memo[E any] struct {
	once sync.Once
	err  *E
}

// NewCached creates a pure field with a memoized rule result.
func NewCached[T comparable, E any](value T, rule Rule[T, E]) CachedField[T, E] {
	return newCached("", value, false, rule)
}

// NewCachedDirty creates a dirty field with a memoized rule result.
func NewCachedDirty[T comparable, E any](value T, rule Rule[T, E]) CachedField[T, E] {
	return newCached("", value, true, rule)
}

func newCached[T comparable, E any](kind string, value T, dirty bool, rule Rule[T, E]) CachedField[T, E] {
	return CachedField[T, E]{
		kind:  kind,
		value: value,
		dirty: dirty,
		rule:  rule,
		memo:  &memo[E]{},
	}
}

// Value returns the value the field was created with.
func (f CachedField[T, E]) Value() T {
	return f.value
}

// Kind returns the name of the kind the field was built from.
func (f CachedField[T, E]) Kind() string {
	return f.kind
}

// IsPure reports whether the field is unmodified since the form was
// initialized.
func (f CachedField[T, E]) IsPure() bool {
	return !f.dirty
}

// IsPristine is a synonym for IsPure.
func (f CachedField[T, E]) IsPristine() bool {
	return !f.dirty
}

// IsDirty reports whether the user has edited the field.
func (f CachedField[T, E]) IsDirty() bool {
	return f.dirty
}

// Error returns the rule result, running the rule on the first call only.
// Every call on the same instance returns the same pointer.
func (f CachedField[T, E]) Error() *E {
	// Zero value has no cache to fill.
	if f.memo == nil {
		return f.rule.check(f.value)
	}
	f.memo.once.Do(func() {
		f.memo.err = f.rule.check(f.value)
	})
	return f.memo.err
}

// IsValid reports whether the cached rule result is nil.
func (f CachedField[T, E]) IsValid() bool {
	return f.Error() == nil
}

// IsNotValid is the negation of IsValid.
func (f CachedField[T, E]) IsNotValid() bool {
	return !f.IsValid()
}

// DisplayError returns nil while the field is pure and the cached error otherwise.
func (f CachedField[T, E]) DisplayError() *E {
	if !f.dirty {
		return nil
	}
	return f.Error()
}

// WithValue returns a dirty copy holding value, with a fresh cache.
func (f CachedField[T, E]) WithValue(value T) CachedField[T, E] {
	return newCached(f.kind, value, true, f.rule)
}

// Reset returns a pure copy holding value, with a fresh cache.
func (f CachedField[T, E]) Reset(value T) CachedField[T, E] {
	return newCached(f.kind, value, false, f.rule)
}

// Equal reports whether both fields are of the same kind and hold equal
// values with the same purity. Rules and caches are not compared.
func (f CachedField[T, E]) Equal(other CachedField[T, E]) bool {
	return f.kind == other.kind && f.value == other.value && f.dirty == other.dirty
}

// Hash returns a hash of the value and purity consistent with Equal.
func (f CachedField[T, E]) Hash() uint64 {
	return hashOf(f.value, !f.dirty)
}

func (f CachedField[T, E]) String() string {
	return format(f.kind, f.value, !f.dirty)
}
