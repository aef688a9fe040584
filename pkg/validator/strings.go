package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return newRule(field, "validation.required", "field is required", nil, func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, min int) Rule {
	return newRule(field, "validation.min_length",
		fmt.Sprintf("must be at least %d characters long", min),
		map[string]any{"min": min},
		func() bool { return utf8.RuneCountInString(value) >= min },
	)
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, "validation.max_length",
		fmt.Sprintf("must be at most %d characters long", max),
		map[string]any{"max": max},
		func() bool { return utf8.RuneCountInString(value) <= max },
	)
}

// LenBetween combines MinLen and MaxLen into a single rule.
func LenBetween(field, value string, min, max int) Rule {
	return newRule(field, "validation.length_between",
		fmt.Sprintf("must be between %d and %d characters long", min, max),
		map[string]any{"min": min, "max": max},
		func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
	)
}

// Matches validates value against re. Empty values pass; combine with
// Required when the field is mandatory.
func Matches(field, value string, re *regexp.Regexp) Rule {
	return newRule(field, "validation.pattern", "has invalid format",
		map[string]any{"pattern": re.String()},
		func() bool { return value == "" || re.MatchString(value) },
	)
}
