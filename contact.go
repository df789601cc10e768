package contacts

import (
	"github.com/npillmayer/contacts/result"
)

// --- Contact info per channel ----------------------------------------------

// EmailContactInfo is an email address together with its verification
// status. Fresh values are always unverified; only Verified produces a
// verified one.
type EmailContactInfo struct {
	address  EmailAddress
	verified bool
}

// NewEmailContactInfo wraps a validated email address, unverified.
func NewEmailContactInfo(address EmailAddress) EmailContactInfo {
	return EmailContactInfo{address: address}
}

func (e EmailContactInfo) Address() EmailAddress {
	return e.address
}

func (e EmailContactInfo) IsVerified() bool {
	return e.verified
}

// Verified returns a copy with the verified flag set. This is the entry
// point for an email-verification collaborator; the model itself never
// flips the flag.
func (e EmailContactInfo) Verified() EmailContactInfo {
	e.verified = true
	return e
}

// PostalContactInfo is a postal address together with the outcome of an
// external address validation. Fresh values are always unchecked.
type PostalContactInfo struct {
	address PostalAddress
	valid   bool
}

// NewPostalContactInfo wraps a postal address, not yet validated by an
// address-validation collaborator.
func NewPostalContactInfo(address PostalAddress) PostalContactInfo {
	return PostalContactInfo{address: address}
}

func (p PostalContactInfo) Address() PostalAddress {
	return p.address
}

func (p PostalContactInfo) IsValid() bool {
	return p.valid
}

// Validated returns a copy with the valid flag set. Entry point for an
// address-validation collaborator.
func (p PostalContactInfo) Validated() PostalContactInfo {
	p.valid = true
	return p
}

// --- ContactInfo variant ---------------------------------------------------

// ContactInfo is a closed variant: a contact holds email info, postal info,
// or both. There deliberately is no case for "neither" — the business rule
// "every contact is reachable somehow" is a structural property, not a
// runtime check.
//
// The interface is sealed: variants dispatch through an unexported visitor,
// so no type outside this package can add a case. Adding a case inside the
// package extends infoVisitor, which breaks every fold at compile time
// until the new case is handled.
type ContactInfo interface {
	apply(infoVisitor)
	Match() InfoMatcher
}

// infoVisitor has exactly one method per ContactInfo variant.
type infoVisitor interface {
	emailOnly(EmailContactInfo)
	postalOnly(PostalContactInfo)
	both(EmailContactInfo, PostalContactInfo)
}

// EmailOnly is a contact reachable by email only.
type EmailOnly struct {
	Email EmailContactInfo
}

// PostalOnly is a contact reachable by mail only.
type PostalOnly struct {
	Postal PostalContactInfo
}

// Both is a contact reachable by email and by mail.
type Both struct {
	Email  EmailContactInfo
	Postal PostalContactInfo
}

func (v EmailOnly) apply(visitor infoVisitor)  { visitor.emailOnly(v.Email) }
func (v PostalOnly) apply(visitor infoVisitor) { visitor.postalOnly(v.Postal) }
func (v Both) apply(visitor infoVisitor)       { visitor.both(v.Email, v.Postal) }

func (v EmailOnly) Match() InfoMatcher  { return infoMatcher{info: v} }
func (v PostalOnly) Match() InfoMatcher { return infoMatcher{info: v} }
func (v Both) Match() InfoMatcher       { return infoMatcher{info: v} }

// MatchInfo is a total case analysis over the three ContactInfo variants.
// All three case functions are mandatory; there is no default.
func MatchInfo[T any](info ContactInfo,
	emailOnly func(EmailContactInfo) T,
	postalOnly func(PostalContactInfo) T,
	both func(EmailContactInfo, PostalContactInfo) T,
) T {
	fold := infoFold[T]{
		onEmailOnly:  emailOnly,
		onPostalOnly: postalOnly,
		onBoth:       both,
	}
	info.apply(&fold)
	return fold.out
}

type infoFold[T any] struct {
	onEmailOnly  func(EmailContactInfo) T
	onPostalOnly func(PostalContactInfo) T
	onBoth       func(EmailContactInfo, PostalContactInfo) T
	out          T
}

func (f *infoFold[T]) emailOnly(e EmailContactInfo) { f.out = f.onEmailOnly(e) }

func (f *infoFold[T]) postalOnly(p PostalContactInfo) { f.out = f.onPostalOnly(p) }

func (f *infoFold[T]) both(e EmailContactInfo, p PostalContactInfo) { f.out = f.onBoth(e, p) }

// InfoMatcher destructures a ContactInfo, to be used in a switch statement:
//
//	var e EmailContactInfo
//	var p PostalContactInfo
//	switch m := info.Match(); m {
//	case m.EmailOnly(&e):
//	case m.PostalOnly(&p):
//	case m.Both(&e, &p):
//	}
//
// Unlike MatchInfo, a switch over the matcher is not checked for
// completeness by the compiler; use MatchInfo where totality matters.
type InfoMatcher interface {
	EmailOnly(*EmailContactInfo) InfoMatcher
	PostalOnly(*PostalContactInfo) InfoMatcher
	Both(*EmailContactInfo, *PostalContactInfo) InfoMatcher
}

type infoMatcher struct {
	info ContactInfo
}

func (m infoMatcher) EmailOnly(e *EmailContactInfo) InfoMatcher {
	if v, ok := m.info.(EmailOnly); ok {
		*e = v.Email
		return m
	}
	return nil
}

func (m infoMatcher) PostalOnly(p *PostalContactInfo) InfoMatcher {
	if v, ok := m.info.(PostalOnly); ok {
		*p = v.Postal
		return m
	}
	return nil
}

func (m infoMatcher) Both(e *EmailContactInfo, p *PostalContactInfo) InfoMatcher {
	if v, ok := m.info.(Both); ok {
		*e = v.Email
		*p = v.Postal
		return m
	}
	return nil
}

// --- Contact ---------------------------------------------------------------

// Contact is a named, reachable person. Fields are unexported so that every
// reachable Contact was built by a constructor which installed a variant —
// the zero Contact is not obtainable through the public API, which closes
// the nil-interface hole a public Info field would open.
type Contact struct {
	name PersonalName
	info ContactInfo
}

// ContactFromEmail builds a contact reachable by the given raw email
// address. The address is validated; on rejection the ValidationError is
// passed through and no partial Contact exists.
func ContactFromEmail(name PersonalName, rawEmail string) result.Result[Contact] {
	return result.Map(func(address EmailAddress) Contact {
		return Contact{
			name: name,
			info: EmailOnly{Email: NewEmailContactInfo(address)},
		}
	}, NewEmailAddress(rawEmail))
}

// ContactFromPostal builds a contact reachable by mail only.
func ContactFromPostal(name PersonalName, postal PostalContactInfo) Contact {
	return Contact{name: name, info: PostalOnly{Postal: postal}}
}

func (c Contact) Name() PersonalName {
	return c.name
}

func (c Contact) Info() ContactInfo {
	return c.info
}

// WithPostalAddress returns a contact with postal info replaced by postal,
// preserving email info where present:
//
//	EmailOnly(e)  ↦  Both(e, postal)
//	PostalOnly(_) ↦  PostalOnly(postal)
//	Both(e, _)    ↦  Both(e, postal)
//
// The receiver is left untouched. postal is taken as given; validating it
// is the caller's business (via NewPostalAddress).
func (c Contact) WithPostalAddress(postal PostalContactInfo) Contact {
	info := MatchInfo(c.info,
		func(email EmailContactInfo) ContactInfo {
			return Both{Email: email, Postal: postal}
		},
		func(PostalContactInfo) ContactInfo {
			return PostalOnly{Postal: postal}
		},
		func(email EmailContactInfo, _ PostalContactInfo) ContactInfo {
			return Both{Email: email, Postal: postal}
		},
	)
	return Contact{name: c.name, info: info}
}

// MarkEmailVerified returns a contact whose email info, if any, carries the
// verified flag. Contacts without email info are returned unchanged. To be
// called on behalf of an email-verification collaborator only.
func (c Contact) MarkEmailVerified() Contact {
	info := MatchInfo(c.info,
		func(email EmailContactInfo) ContactInfo {
			return EmailOnly{Email: email.Verified()}
		},
		func(postal PostalContactInfo) ContactInfo {
			return PostalOnly{Postal: postal}
		},
		func(email EmailContactInfo, postal PostalContactInfo) ContactInfo {
			return Both{Email: email.Verified(), Postal: postal}
		},
	)
	return Contact{name: c.name, info: info}
}

// MarkPostalValidated returns a contact whose postal info, if any, carries
// the valid flag. Counterpart of MarkEmailVerified for the
// address-validation collaborator.
func (c Contact) MarkPostalValidated() Contact {
	info := MatchInfo(c.info,
		func(email EmailContactInfo) ContactInfo {
			return EmailOnly{Email: email}
		},
		func(postal PostalContactInfo) ContactInfo {
			return PostalOnly{Postal: postal.Validated()}
		},
		func(email EmailContactInfo, postal PostalContactInfo) ContactInfo {
			return Both{Email: email, Postal: postal.Validated()}
		},
	)
	return Contact{name: c.name, info: info}
}
