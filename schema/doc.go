// Package schema declares validation schemas for the typed parts of a request.
//
// A Schema[T] describes values of type T: the type parameter is the shape a
// route handler receives, and the schema decides whether a decoded value of
// that shape is acceptable. Schemas may also prepare a value before it is
// checked (defaults, normalisation) by implementing Preparer[T].
//
//	type CreateItem struct {
//		Name  string   `json:"name"`
//		Tags  []string `json:"tags"`
//		Price float64  `json:"price"`
//	}
//
//	var createItem = schema.Rules(func(v CreateItem) []validator.Rule {
//		return []validator.Rule{
//			validator.Required("name", v.Name),
//			validator.MaxItems("tags", v.Tags, 10),
//			validator.Positive("price", v.Price),
//		}
//	}).Transform(func(v *CreateItem) {
//		v.Name = strings.TrimSpace(v.Name)
//	})
//
// Parse runs preparation and validation in one call and is what the route
// package uses for every request source.
package schema
