// Package field provides immutable, type-safe form field values that pair the
// current value of an input with a "pure" (not yet touched) flag and a
// pluggable validation rule.
//
// A field never changes after construction. The application state holder
// builds a new field on every user edit and swaps it into its own state, then
// reads the computed properties (IsValid, Error, DisplayError) to re-render.
//
// # Architecture
//
// Field kinds are expressed by composition: every Field carries a reference to
// its Rule instead of relying on method overriding. A Kind bundles a name and a
// rule so that all fields of the same kind are constructed consistently and
// compare by name, value and purity:
//
//	type NameError int
//
//	const NameEmpty NameError = iota + 1
//
//	var Name = field.NewKind("name", func(v string) *NameError {
//	    if strings.TrimSpace(v) == "" {
//	        return field.Invalid(NameEmpty)
//	    }
//	    return nil
//	})
//
//	name := Name.Pure("")     // untouched, DisplayError() == nil
//	name = name.WithValue("J") // edited, pure == false
//
// Core building blocks:
//   - Rule        – func(T) *E, nil means valid
//   - Field       – evaluates the rule on every read
//   - CachedField – evaluates the rule at most once per instance
//   - Kind        – named constructor for fields sharing a rule
//   - Input       – the capability surface consumed by package form
//
// # Display errors
//
// DisplayError returns nil while the field is pure regardless of validity, so
// a freshly rendered form does not shout "required" at the user before they
// have typed anything. Once a field is dirty the real error is revealed.
//
// # Caching
//
// Use CachedField (NewCached / NewCachedKind) when the rule is expensive, for
// example a regular expression, and the renderer reads both IsValid and Error.
// The cached result is computed under sync.Once, so concurrent first reads run
// the rule exactly once and all observe the same pointer.
//
// # Rule obligations
//
// Rules must be total and deterministic: return nil or exactly one error for
// every value of T, never panic, and never depend on anything but the value.
// The package does not guard against misbehaving rules.
package field
