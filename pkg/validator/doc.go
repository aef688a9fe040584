// Package validator provides the rule primitives that schemas are built from.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Rules are evaluated with Apply, which collects every failed rule into a
// ValidationErrors value. ValidationErrors implements error, carries i18n
// translation keys and can be re-rooted under a request source with WithPrefix
// ("email" becomes "body.email").
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", req.Name),
//	    validator.Email("email", req.Email),
//	    validator.Min("age", req.Age, 18),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// Every constructor captures the value at call time, so rules are cheap to
// build per request and safe for concurrent use.
package validator
