package schema

import "errors"

var ErrNilTarget = errors.New("schema: nil target")
