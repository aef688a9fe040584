package validator

import (
	"fmt"
	"slices"
)

func NotEmpty[T any](field string, values []T) Rule {
	return newRule(field, "validation.required", "must contain at least one item", nil,
		func() bool { return len(values) > 0 },
	)
}

func MinItems[T any](field string, values []T, min int) Rule {
	return newRule(field, "validation.min_items",
		fmt.Sprintf("must contain at least %d items", min),
		map[string]any{"min": min},
		func() bool { return len(values) >= min },
	)
}

func MaxItems[T any](field string, values []T, max int) Rule {
	return newRule(field, "validation.max_items",
		fmt.Sprintf("must contain at most %d items", max),
		map[string]any{"max": max},
		func() bool { return len(values) <= max },
	)
}

func Unique[T comparable](field string, values []T) Rule {
	return newRule(field, "validation.unique", "must not contain duplicates", nil,
		func() bool {
			seen := make(map[T]struct{}, len(values))
			for _, v := range values {
				if _, ok := seen[v]; ok {
					return false
				}
				seen[v] = struct{}{}
			}
			return true
		},
	)
}

// OneOf validates that value is one of allowed.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return newRule(field, "validation.one_of",
		fmt.Sprintf("must be one of: %v", allowed),
		map[string]any{"allowed": allowed},
		func() bool { return slices.Contains(allowed, value) },
	)
}

// Each applies rule to every element and reports failures as field[i].
func Each[T any](field string, values []T, rule func(field string, v T) Rule) []Rule {
	rules := make([]Rule, 0, len(values))
	for i, v := range values {
		rules = append(rules, rule(fmt.Sprintf("%s[%d]", field, i), v))
	}
	return rules
}
