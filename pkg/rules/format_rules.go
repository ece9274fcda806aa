package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formz/pkg/field"
)

const (
	KeyEmail   = "validation.email"
	KeyPattern = "validation.regex_pattern"
)

// Email accepts RFC 5322 addresses with a dotted domain, as typed into web forms.
func Email() field.Rule[string, Violation] {
	return func(value string) *Violation {
		if !validEmail(value) {
			return violation(KeyEmail, "must be a valid email address", nil)
		}
		return nil
	}
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Reject display-name forms such as "John <john@example.com>".
	if addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// Matches requires value to match pattern. The pattern is compiled once when
// the rule is built and panics if invalid, like regexp.MustCompile.
func Matches(pattern, description string) field.Rule[string, Violation] {
	re := regexp.MustCompile(pattern)
	return func(value string) *Violation {
		if !re.MatchString(value) {
			return violation(KeyPattern,
				fmt.Sprintf("must match %s pattern", description),
				map[string]any{"pattern": pattern, "description": description},
			)
		}
		return nil
	}
}
