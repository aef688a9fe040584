package sanitizer

import "strings"

// CleanStrings trims every element, applies transforms, and drops empty
// values and duplicates. Order of first appearance is kept. A nil slice stays
// nil.
func CleanStrings(values []string, transforms ...func(string) string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = Apply(strings.TrimSpace(v), transforms...)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Deduplicate keeps the first occurrence of each value.
func Deduplicate[T comparable](values []T) []T {
	if values == nil {
		return nil
	}
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// LimitLength returns at most maxLength leading elements.
func LimitLength[T any](values []T, maxLength int) []T {
	if maxLength <= 0 {
		return []T{}
	}
	if len(values) <= maxLength {
		return values
	}
	return values[:maxLength]
}
