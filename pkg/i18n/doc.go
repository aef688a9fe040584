// Package i18n translates validation and error messages.
//
// Translations are nested YAML documents keyed by language code at the root:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//
// Keys are addressed with dots ("validation.required") and placeholders use
// the %{name} form. Language negotiation uses golang.org/x/text/language, so
// "de-AT" resolves to a loaded "de" bundle.
//
// Default returns a translator preloaded with messages for every rule in
// pkg/validator in English, German and Spanish.
package i18n
