package field

// Kind is a named field kind: a rule shared by every field built from it.
// Fields of the same kind compare by value and purity.
type Kind[T comparable, E any] struct {
	name string
	rule Rule[T, E]
}

// NewKind declares a field kind validated by rule.
func NewKind[T comparable, E any](name string, rule Rule[T, E]) Kind[T, E] {
	return Kind[T, E]{name: name, rule: rule}
}

// Name returns the kind name used in equality and String.
func (k Kind[T, E]) Name() string {
	return k.name
}

// Rule exposes the kind's rule so it can be composed into other rules.
func (k Kind[T, E]) Rule() Rule[T, E] {
	return k.rule
}

// New creates a field of this kind with an explicit purity flag.
func (k Kind[T, E]) New(value T, pure bool) Field[T, E] {
	return Field[T, E]{kind: k.name, value: value, dirty: !pure, rule: k.rule}
}

// Pure creates an untouched field, typically for the initial form state.
func (k Kind[T, E]) Pure(value T) Field[T, E] {
	return k.New(value, true)
}

// Dirty creates a field holding a user edited value.
func (k Kind[T, E]) Dirty(value T) Field[T, E] {
	return k.New(value, false)
}

// CachedKind is a Kind whose fields memoize their rule result. Prefer it for
// expensive rules such as pattern matching.
type CachedKind[T comparable, E any] struct {
	name string
	rule Rule[T, E]
}

// NewCachedKind declares a field kind whose fields memoize the result of rule.
func NewCachedKind[T comparable, E any](name string, rule Rule[T, E]) CachedKind[T, E] {
	return CachedKind[T, E]{name: name, rule: rule}
}

// Name returns the kind name used in equality and String.
func (k CachedKind[T, E]) Name() string {
	return k.name
}

// Rule exposes the kind's rule so it can be composed into other rules.
func (k CachedKind[T, E]) Rule() Rule[T, E] {
	return k.rule
}

// New creates a cached field of this kind with an explicit purity flag.
func (k CachedKind[T, E]) New(value T, pure bool) CachedField[T, E] {
	return newCached(k.name, value, !pure, k.rule)
}

// Pure creates an untouched cached field.
func (k CachedKind[T, E]) Pure(value T) CachedField[T, E] {
	return k.New(value, true)
}

// Dirty creates a cached field holding a user edited value.
func (k CachedKind[T, E]) Dirty(value T) CachedField[T, E] {
	return k.New(value, false)
}
