package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrInvalidLanguage   = errors.New("invalid language code")
)
