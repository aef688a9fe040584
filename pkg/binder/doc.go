// Package binder decodes the raw parts of an HTTP request into Go values.
//
// Each binder handles one request source and one struct tag:
//
//   - Body(): JSON, urlencoded or multipart form body, chosen by Content-Type
//   - JSON(): strict JSON body (unknown fields rejected, single document)
//   - Form(): `form:` tags from urlencoded or multipart bodies
//   - Query(arrayKeys...): `query:` tags from the URL query string
//   - Header(): `header:` tags from request headers
//   - Path(extractor): `path:` tags from router path parameters
//
// Fields without a tag bind to their lower-cased name; a "-" tag skips the
// field. Supported field types are strings, integers, unsigned integers,
// floats, booleans, pointers and slices of those, plus any type implementing
// encoding.TextUnmarshaler (time.Time, uuid.UUID). Query and header targets
// may also be map[string]string or map[string][]string.
//
// Binders only decode; validation belongs to the schema package. All errors
// wrap one of the package sentinels so callers can map them to HTTP statuses:
//
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//	    // 415
//	}
package binder
