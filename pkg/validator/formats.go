package validator

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Email validates an addr-spec (no display name). Empty values fail.
func Email(field, value string) Rule {
	return newRule(field, "validation.email", "must be a valid email address", nil, func() bool {
		if strings.TrimSpace(value) == "" {
			return false
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}
		domain := value[strings.LastIndex(value, "@")+1:]
		return strings.Contains(domain, ".") &&
			!strings.HasPrefix(domain, ".") &&
			!strings.HasSuffix(domain, ".")
	})
}

// URL validates an absolute http or https URL.
func URL(field, value string) Rule {
	return newRule(field, "validation.url", "must be a valid URL", nil, func() bool {
		u, err := url.Parse(value)
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
}

// UUID validates the canonical 36 character form and rejects the nil UUID.
func UUID(field, value string) Rule {
	return newRule(field, "validation.uuid", "must be a valid UUID", nil, func() bool {
		if len(value) != 36 {
			return false
		}
		id, err := uuid.Parse(value)
		return err == nil && id != uuid.Nil
	})
}
