package rules

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/formz/pkg/field"
)

const KeyOneOf = "validation.in_list"

// OneOf requires the value to be one of allowed.
func OneOf[T comparable](allowed ...T) field.Rule[T, Violation] {
	allowed = slices.Clone(allowed)
	return func(value T) *Violation {
		if !slices.Contains(allowed, value) {
			return violation(KeyOneOf,
				fmt.Sprintf("must be one of: %v", allowed),
				map[string]any{"allowed_values": allowed},
			)
		}
		return nil
	}
}
