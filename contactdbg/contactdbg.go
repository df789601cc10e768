/*
Package contactdbg implements helpers to debug contact records.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package contactdbg

import (
	"fmt"

	"github.com/npillmayer/contacts"
	tp "github.com/xlab/treeprint"
)

// Print renders a contact as an ASCII tree, with one branch per piece of
// contact info and its verification status. Intended for test logs and
// debugging sessions, not for end users.
func Print(c contacts.Contact) string {
	printer := tp.New()
	printer.SetValue(c.Name().String())
	contacts.MatchInfo(c.Info(),
		func(email contacts.EmailContactInfo) tp.Tree {
			return emailBranch(printer, email)
		},
		func(postal contacts.PostalContactInfo) tp.Tree {
			return postalBranch(printer, postal)
		},
		func(email contacts.EmailContactInfo, postal contacts.PostalContactInfo) tp.Tree {
			emailBranch(printer, email)
			return postalBranch(printer, postal)
		},
	)
	return printer.String()
}

func emailBranch(printer tp.Tree, email contacts.EmailContactInfo) tp.Tree {
	branch := printer.AddBranch("email")
	branch.AddNode(email.Address().String())
	branch.AddNode(fmt.Sprintf("verified=%v", email.IsVerified()))
	return branch
}

func postalBranch(printer tp.Tree, postal contacts.PostalContactInfo) tp.Tree {
	branch := printer.AddBranch("postal")
	branch.AddNode(postal.Address().String())
	branch.AddNode(fmt.Sprintf("valid=%v", postal.IsValid()))
	return branch
}
