package contacts_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	. "github.com/npillmayer/contacts"
)

func john(t *testing.T) PersonalName {
	t.Helper()
	return unwrap(t, NewPersonalName("John", "", "Smith"))
}

func portland(t *testing.T) PostalContactInfo {
	t.Helper()
	address := unwrap(t, NewPostalAddress("1 Main St", "", "Portland", "OR", "97210"))
	return NewPostalContactInfo(address)
}

func TestContactFromEmail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contacts")
	defer teardown()
	//
	c := unwrap(t, ContactFromEmail(john(t), "smith@gmail.com"))
	if c.Name().First() != "John" {
		t.Errorf("expected contact to be named John, got %q", c.Name().First())
	}
	var email EmailContactInfo
	var postal PostalContactInfo
	switch m := c.Info().Match(); m {
	case m.EmailOnly(&email):
		if email.Address().String() != "smith@gmail.com" {
			t.Errorf("expected the validated address, got %q", email.Address())
		}
		if email.IsVerified() {
			t.Error("expected a fresh contact to be unverified")
		}
	case m.PostalOnly(&postal):
		t.Error("expected EmailOnly, got PostalOnly")
	case m.Both(&email, &postal):
		t.Error("expected EmailOnly, got Both")
	}
}

func TestContactFromBadEmail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contacts")
	defer teardown()
	//
	verr := rejection(t, ContactFromEmail(unwrap(t, NewPersonalName("Tarzan", "", "Lord")), "dasdadasda"))
	if verr.Reason != ReasonMalformedEmail {
		t.Errorf("expected reason %s, got %s", ReasonMalformedEmail, verr.Reason)
	}
}

// variantOf names the variant a contact currently holds.
func variantOf(c Contact) string {
	return MatchInfo(c.Info(),
		func(EmailContactInfo) string { return "EmailOnly" },
		func(PostalContactInfo) string { return "PostalOnly" },
		func(EmailContactInfo, PostalContactInfo) string { return "Both" },
	)
}

func TestWithPostalAddressAttaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contacts")
	defer teardown()
	//
	c := unwrap(t, ContactFromEmail(john(t), "smith@gmail.com"))
	updated := c.WithPostalAddress(portland(t))
	if variantOf(updated) != "Both" {
		t.Errorf("expected EmailOnly + postal to yield Both, got %s", variantOf(updated))
	}
	var email EmailContactInfo
	var postal PostalContactInfo
	switch m := updated.Info().Match(); m {
	case m.Both(&email, &postal):
		if email.Address().String() != "smith@gmail.com" {
			t.Error("expected email info to be preserved")
		}
		if postal.Address().Zip.String() != "97210" {
			t.Error("expected the new postal info to be attached")
		}
	case m.EmailOnly(&email):
		t.Error("update lost the postal info")
	case m.PostalOnly(&postal):
		t.Error("update lost the email info")
	}
	// the original is a value, untouched by the update
	if variantOf(c) != "EmailOnly" {
		t.Errorf("expected the original contact to be unchanged, got %s", variantOf(c))
	}
}

func TestWithPostalAddressReplaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contacts")
	defer teardown()
	//
	c := ContactFromPostal(john(t), portland(t))
	address2 := unwrap(t, NewPostalAddress("7 Oak Ave", "", "Salem", "OR", "97301"))
	updated := c.WithPostalAddress(NewPostalContactInfo(address2))
	if variantOf(updated) != "PostalOnly" {
		t.Errorf("expected PostalOnly to stay PostalOnly, got %s", variantOf(updated))
	}
	var postal PostalContactInfo
	var email EmailContactInfo
	switch m := updated.Info().Match(); m {
	case m.PostalOnly(&postal):
		if postal.Address().City != "Salem" {
			t.Errorf("expected the old postal info to be discarded, got %q", postal.Address().City)
		}
	case m.EmailOnly(&email):
		t.Error("expected PostalOnly")
	case m.Both(&email, &postal):
		t.Error("expected PostalOnly")
	}
}

func TestWithPostalAddressOnBoth(t *testing.T) {
	c := unwrap(t, ContactFromEmail(john(t), "smith@gmail.com")).WithPostalAddress(portland(t))
	address2 := unwrap(t, NewPostalAddress("7 Oak Ave", "", "Salem", "OR", "97301"))
	updated := c.WithPostalAddress(NewPostalContactInfo(address2))
	var email EmailContactInfo
	var postal PostalContactInfo
	switch m := updated.Info().Match(); m {
	case m.Both(&email, &postal):
		if email.Address().String() != "smith@gmail.com" {
			t.Error("expected email info to survive the replacement")
		}
		if postal.Address().City != "Salem" {
			t.Error("expected the postal info to be replaced, not merged")
		}
	case m.EmailOnly(&email):
		t.Error("expected Both")
	case m.PostalOnly(&postal):
		t.Error("expected Both")
	}
}

func TestWithPostalAddressIdempotent(t *testing.T) {
	c := unwrap(t, ContactFromEmail(john(t), "smith@gmail.com"))
	p := portland(t)
	once := c.WithPostalAddress(p)
	twice := once.WithPostalAddress(p)
	if once != twice {
		t.Errorf("expected attaching the same postal info twice to be idempotent:\n%v\n%v", once, twice)
	}
}

func TestMarkEmailVerified(t *testing.T) {
	c := unwrap(t, ContactFromEmail(john(t), "smith@gmail.com"))
	verified := c.MarkEmailVerified()
	var email EmailContactInfo
	var postal PostalContactInfo
	switch m := verified.Info().Match(); m {
	case m.EmailOnly(&email):
		if !email.IsVerified() {
			t.Error("expected email info to be verified")
		}
	case m.PostalOnly(&postal):
		t.Error("expected EmailOnly")
	case m.Both(&email, &postal):
		t.Error("expected EmailOnly")
	}
	// verification never touches the original value
	switch m := c.Info().Match(); m {
	case m.EmailOnly(&email):
		if email.IsVerified() {
			t.Error("expected the original contact to stay unverified")
		}
	case m.PostalOnly(&postal):
	case m.Both(&email, &postal):
	}
}

func TestMarkPostalValidated(t *testing.T) {
	c := ContactFromPostal(john(t), portland(t))
	validated := c.MarkPostalValidated()
	var email EmailContactInfo
	var postal PostalContactInfo
	switch m := validated.Info().Match(); m {
	case m.PostalOnly(&postal):
		if !postal.IsValid() {
			t.Error("expected postal info to be marked valid")
		}
	case m.EmailOnly(&email):
		t.Error("expected PostalOnly")
	case m.Both(&email, &postal):
		t.Error("expected PostalOnly")
	}
}
