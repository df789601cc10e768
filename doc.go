/*
Package contacts models contact records with validated wrapper types and
closed variants.

The package is an exercise in making illegal states unrepresentable: raw
strings are turned into domain values (EmailAddress, ZipCode, StateCode, …)
by validating factory functions, and the one business rule of the model —
a contact always has at least one of email or postal information — is
encoded structurally, as a variant type with exactly three cases
(EmailOnly, PostalOnly, Both) and no case for "neither".

All values are immutable. Updates like Contact.WithPostalAddress return a
new value and leave the receiver untouched, so the package may be used from
any goroutine without synchronization.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package contacts

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'contacts'.
func tracer() tracing.Trace {
	return tracing.Select("contacts")
}
