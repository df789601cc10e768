package contacts

import (
	"github.com/npillmayer/contacts/result"
)

// PhoneNumber wraps a phone number in its original formatting. Validation
// accepts digits plus the usual separators and requires 7 to 15 digits
// overall (ITU-T E.164 sets the upper bound).
type PhoneNumber struct {
	number string
}

// NewPhoneNumber validates a raw string as a phone number.
func NewPhoneNumber(raw string) result.Result[PhoneNumber] {
	digits := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '+':
			// separator, fine
		default:
			return invalid[PhoneNumber](ReasonMalformedPhone, raw)
		}
	}
	if digits < 7 || digits > 15 {
		return invalid[PhoneNumber](ReasonMalformedPhone, raw)
	}
	return result.Ok(PhoneNumber{number: raw})
}

func (p PhoneNumber) String() string {
	return p.number
}
