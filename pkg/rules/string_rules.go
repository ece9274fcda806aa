package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/formz/pkg/field"
)

const (
	KeyRequired  = "validation.required"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
)

// Required rejects empty and whitespace only strings.
func Required() field.Rule[string, Violation] {
	return func(value string) *Violation {
		if strings.TrimSpace(value) == "" {
			return violation(KeyRequired, "field is required", nil)
		}
		return nil
	}
}

func MinLen(min int) field.Rule[string, Violation] {
	return func(value string) *Violation {
		if length(value) < min {
			return violation(KeyMinLength,
				fmt.Sprintf("must be at least %d characters long", min),
				map[string]any{"min": min},
			)
		}
		return nil
	}
}

func MaxLen(max int) field.Rule[string, Violation] {
	return func(value string) *Violation {
		if length(value) > max {
			return violation(KeyMaxLength,
				fmt.Sprintf("must be at most %d characters long", max),
				map[string]any{"max": max},
			)
		}
		return nil
	}
}

// length counts user perceived characters for composed and decomposed input alike.
func length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
