package rules

import (
	"fmt"

	"github.com/dmitrymomot/formz/pkg/field"
)

const (
	KeyMin     = "validation.min"
	KeyMax     = "validation.max"
	KeyBetween = "validation.between"
)

// Min requires value >= min.
func Min[T Numeric](min T) field.Rule[T, Violation] {
	return func(value T) *Violation {
		if value < min {
			return violation(KeyMin, fmt.Sprintf("must be at least %v", min), map[string]any{"min": min})
		}
		return nil
	}
}

// Max requires value <= max.
func Max[T Numeric](max T) field.Rule[T, Violation] {
	return func(value T) *Violation {
		if value > max {
			return violation(KeyMax, fmt.Sprintf("must be at most %v", max), map[string]any{"max": max})
		}
		return nil
	}
}

// Between requires min <= value <= max.
func Between[T Numeric](min, max T) field.Rule[T, Violation] {
	return func(value T) *Violation {
		if value < min || value > max {
			return violation(KeyBetween,
				fmt.Sprintf("must be between %v and %v", min, max),
				map[string]any{"min": min, "max": max},
			)
		}
		return nil
	}
}
