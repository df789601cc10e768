package contacts

import (
	"fmt"
	"strings"

	"github.com/npillmayer/contacts/result"
)

// --- StateCode -------------------------------------------------------------

// StateCode wraps a two-letter USPS state or territory abbreviation.
// Matching is case-insensitive; the wrapped code is always uppercase.
type StateCode struct {
	code string
}

var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {}, "AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

// NewStateCode validates a raw string against the fixed set of USPS codes,
// canonicalizing it to uppercase.
func NewStateCode(raw string) result.Result[StateCode] {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := stateCodes[code]; !ok {
		return invalid[StateCode](ReasonUnknownState, raw)
	}
	return result.Ok(StateCode{code: code})
}

func (s StateCode) String() string {
	return s.code
}

// --- ZipCode ---------------------------------------------------------------

// ZipCode wraps a string of exactly five ASCII digits.
type ZipCode struct {
	zip string
}

// NewZipCode validates a raw string as a 5-digit ZIP code.
func NewZipCode(raw string) result.Result[ZipCode] {
	if len(raw) != 5 {
		return invalid[ZipCode](ReasonMalformedZip, raw)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return invalid[ZipCode](ReasonMalformedZip, raw)
		}
	}
	return result.Ok(ZipCode{zip: raw})
}

func (z ZipCode) String() string {
	return z.zip
}

// --- PostalAddress ---------------------------------------------------------

// PostalAddress is a US-style postal address. The free-form lines carry no
// invariant and are plain strings; state and zip are validated wrappers, so
// a PostalAddress cannot hold an unknown state or a malformed zip.
type PostalAddress struct {
	Line1 string
	Line2 string
	City  string
	State StateCode
	Zip   ZipCode
}

// NewPostalAddress validates rawState and rawZip and assembles the address.
// The first rejection wins; the free-form lines are taken as given.
func NewPostalAddress(line1, line2, city, rawState, rawZip string) result.Result[PostalAddress] {
	return result.Map2(func(state StateCode, zip ZipCode) PostalAddress {
		return PostalAddress{
			Line1: line1,
			Line2: line2,
			City:  city,
			State: state,
			Zip:   zip,
		}
	}, NewStateCode(rawState), NewZipCode(rawZip))
}

func (a PostalAddress) String() string {
	lines := make([]string, 0, 3)
	if a.Line1 != "" {
		lines = append(lines, a.Line1)
	}
	if a.Line2 != "" {
		lines = append(lines, a.Line2)
	}
	lines = append(lines, fmt.Sprintf("%s, %s %s", a.City, a.State, a.Zip))
	return strings.Join(lines, ", ")
}
