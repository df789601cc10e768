package contacts

import "fmt"

// ContactMethod is a closed variant over the four ways of reaching a
// person. Sealed the same way as ContactInfo: dispatch runs through an
// unexported visitor with one method per case.
type ContactMethod interface {
	apply(methodVisitor)
}

type methodVisitor interface {
	email(EmailAddress)
	postal(PostalAddress)
	homePhone(PhoneNumber)
	workPhone(PhoneNumber)
}

// Email is contact by email.
type Email struct {
	Address EmailAddress
}

// Postal is contact by mail.
type Postal struct {
	Address PostalAddress
}

// HomePhone is contact by phone at home.
type HomePhone struct {
	Number PhoneNumber
}

// WorkPhone is contact by phone at work.
type WorkPhone struct {
	Number PhoneNumber
}

func (v Email) apply(visitor methodVisitor)     { visitor.email(v.Address) }
func (v Postal) apply(visitor methodVisitor)    { visitor.postal(v.Address) }
func (v HomePhone) apply(visitor methodVisitor) { visitor.homePhone(v.Number) }
func (v WorkPhone) apply(visitor methodVisitor) { visitor.workPhone(v.Number) }

// MatchMethod is a total case analysis over the four ContactMethod
// variants.
func MatchMethod[T any](method ContactMethod,
	email func(EmailAddress) T,
	postal func(PostalAddress) T,
	homePhone func(PhoneNumber) T,
	workPhone func(PhoneNumber) T,
) T {
	fold := methodFold[T]{
		onEmail:     email,
		onPostal:    postal,
		onHomePhone: homePhone,
		onWorkPhone: workPhone,
	}
	method.apply(&fold)
	return fold.out
}

type methodFold[T any] struct {
	onEmail     func(EmailAddress) T
	onPostal    func(PostalAddress) T
	onHomePhone func(PhoneNumber) T
	onWorkPhone func(PhoneNumber) T
	out         T
}

func (f *methodFold[T]) email(a EmailAddress) { f.out = f.onEmail(a) }

func (f *methodFold[T]) postal(a PostalAddress) { f.out = f.onPostal(a) }

func (f *methodFold[T]) homePhone(n PhoneNumber) { f.out = f.onHomePhone(n) }

func (f *methodFold[T]) workPhone(n PhoneNumber) { f.out = f.onWorkPhone(n) }

// Describe renders a contact method as one human-readable line.
func Describe(method ContactMethod) string {
	return MatchMethod(method,
		func(a EmailAddress) string { return fmt.Sprintf("Email: %s", a) },
		func(a PostalAddress) string { return fmt.Sprintf("Postal address: %s", a) },
		func(n PhoneNumber) string { return fmt.Sprintf("Home phone: %s", n) },
		func(n PhoneNumber) string { return fmt.Sprintf("Work phone: %s", n) },
	)
}

// DescribeAll renders one line per contact method, preserving input order.
func DescribeAll(methods []ContactMethod) []string {
	lines := make([]string, len(methods))
	for i, method := range methods {
		lines[i] = Describe(method)
	}
	return lines
}
