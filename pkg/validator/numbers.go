package validator

import "fmt"

func Min[T Numeric](field string, value, min T) Rule {
	return newRule(field, "validation.min", fmt.Sprintf("must be at least %v", min),
		map[string]any{"min": min},
		func() bool { return value >= min },
	)
}

func Max[T Numeric](field string, value, max T) Rule {
	return newRule(field, "validation.max", fmt.Sprintf("must be at most %v", max),
		map[string]any{"max": max},
		func() bool { return value <= max },
	)
}

// Between is inclusive on both ends.
func Between[T Numeric](field string, value, min, max T) Rule {
	return newRule(field, "validation.between",
		fmt.Sprintf("must be between %v and %v", min, max),
		map[string]any{"min": min, "max": max},
		func() bool { return value >= min && value <= max },
	)
}

func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return newRule(field, "validation.positive", "must be positive", nil,
		func() bool { return value > zero },
	)
}
