package contacts

import (
	"strings"

	"github.com/npillmayer/contacts/result"
)

// EmailAddress wraps a string known to have the shape of an email address:
// a non-empty local part and a non-empty domain, separated by exactly one
// '@'. Values can only be obtained through NewEmailAddress, so holding an
// EmailAddress is proof that validation has happened.
type EmailAddress struct {
	addr string
}

// NewEmailAddress validates a raw string as an email address.
func NewEmailAddress(raw string) result.Result[EmailAddress] {
	local, domain, ok := strings.Cut(raw, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return invalid[EmailAddress](ReasonMalformedEmail, raw)
	}
	return result.Ok(EmailAddress{addr: raw})
}

func (e EmailAddress) String() string {
	return e.addr
}
