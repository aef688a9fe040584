// Package sanitizer provides string and slice normalizers for schema
// preparation steps.
//
//	schema.Rules(itemRules).Transform(func(v *CreateItem) {
//		v.Name = sanitizer.Apply(v.Name, sanitizer.SingleLine, sanitizer.Trim)
//		v.Tags = sanitizer.CleanStrings(v.Tags, sanitizer.ToLower)
//	})
//
// All functions are pure; inputs are never modified.
package sanitizer
