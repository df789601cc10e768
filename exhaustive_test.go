package contacts

import "testing"

// completeCases implements one method per ContactInfo variant. This is a
// compile-time check: declaring a new variant extends infoVisitor, and this
// type (together with every fold in the package) stops compiling until the
// new case is handled. There is nothing to assert at runtime.
type completeCases struct {
	seen string
}

func (cc *completeCases) emailOnly(EmailContactInfo) { cc.seen = "EmailOnly" }

func (cc *completeCases) postalOnly(PostalContactInfo) { cc.seen = "PostalOnly" }

func (cc *completeCases) both(EmailContactInfo, PostalContactInfo) { cc.seen = "Both" }

var _ infoVisitor = &completeCases{}

func TestCaseAnalysisIsTotal(t *testing.T) {
	variants := []ContactInfo{
		EmailOnly{},
		PostalOnly{},
		Both{},
	}
	for _, v := range variants {
		cc := completeCases{}
		v.apply(&cc)
		if cc.seen == "" {
			t.Errorf("variant %T did not dispatch to a case", v)
		}
	}
}

// Same check for the ContactMethod variant.
type completeMethodCases struct {
	seen string
}

func (cc *completeMethodCases) email(EmailAddress) { cc.seen = "Email" }

func (cc *completeMethodCases) postal(PostalAddress) { cc.seen = "Postal" }

func (cc *completeMethodCases) homePhone(PhoneNumber) { cc.seen = "HomePhone" }

func (cc *completeMethodCases) workPhone(PhoneNumber) { cc.seen = "WorkPhone" }

var _ methodVisitor = &completeMethodCases{}

func TestMethodCaseAnalysisIsTotal(t *testing.T) {
	variants := []ContactMethod{
		Email{},
		Postal{},
		HomePhone{},
		WorkPhone{},
	}
	for _, v := range variants {
		cc := completeMethodCases{}
		v.apply(&cc)
		if cc.seen == "" {
			t.Errorf("variant %T did not dispatch to a case", v)
		}
	}
}
