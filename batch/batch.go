/*
Package batch imports contact records from raw rows in bulk.

Validation failures are deterministic, so a failed row is never retried;
it is skipped and reported together with the rejection reason. Whether
skipped rows constitute an error is the caller's decision — the import
itself succeeds whenever the input could be parsed at all.
*/
package batch

import (
	"fmt"

	"github.com/npillmayer/contacts"
	"github.com/npillmayer/contacts/result"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'contacts.batch'.
func tracer() tracing.Trace {
	return tracing.Select("contacts.batch")
}

// Row is one raw contact row of an import file. All fields are unvalidated
// strings; validation happens during Import.
type Row struct {
	First  string `yaml:"first"`
	Middle string `yaml:"middle,omitempty"`
	Last   string `yaml:"last"`
	Email  string `yaml:"email"`
}

// Skip records a row which failed validation, with its position in the
// input and the rejection it produced.
type Skip struct {
	Index int
	Row   Row
	Err   error
}

// Report is the outcome of an import: the contacts built from valid rows,
// in input order, and one Skip per invalid row.
type Report struct {
	Contacts []contacts.Contact
	Skipped  []Skip
}

// ImportYAML parses a YAML sequence of rows and imports them. A parse
// failure is an error; row validation failures are not (they land in
// Report.Skipped).
func ImportYAML(data []byte) (Report, error) {
	var rows []Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return Report{}, fmt.Errorf("cannot parse contact rows: %w", err)
	}
	return Import(rows), nil
}

// Import validates each row and builds a contact from it. Rows are
// processed independently; one bad row never affects its neighbors.
func Import(rows []Row) Report {
	var report Report
	for i, row := range rows {
		var c contacts.Contact
		var err error
		switch m := rowContact(row).Match(); m {
		case m.Ok(&c):
			report.Contacts = append(report.Contacts, c)
		case m.Err(&err):
			tracer().Infof("skipping row %d: %v", i, err)
			report.Skipped = append(report.Skipped, Skip{Index: i, Row: row, Err: err})
		}
	}
	return report
}

// rowContact chains name validation into contact construction; the first
// rejection wins.
func rowContact(row Row) result.Result[contacts.Contact] {
	return result.AndThen(func(name contacts.PersonalName) result.Result[contacts.Contact] {
		return contacts.ContactFromEmail(name, row.Email)
	}, contacts.NewPersonalName(row.First, row.Middle, row.Last))
}
