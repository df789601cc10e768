package contacts

import (
	"fmt"
	"strings"

	"github.com/npillmayer/contacts/maybe"
	"github.com/npillmayer/contacts/result"
)

// PersonalName is a person's name. First and last name are guaranteed
// non-empty; the middle initial is optional and, when present, a single
// character.
type PersonalName struct {
	first  string
	middle maybe.Maybe[rune]
	last   string
}

// NewPersonalName validates the parts of a name. An empty middle string
// means "no middle initial"; a non-empty one must be a single character.
func NewPersonalName(first, middle, last string) result.Result[PersonalName] {
	if strings.TrimSpace(first) == "" {
		return invalid[PersonalName](ReasonEmptyName, first)
	}
	if strings.TrimSpace(last) == "" {
		return invalid[PersonalName](ReasonEmptyName, last)
	}
	initial := maybe.Nothing[rune]()
	if middle != "" {
		runes := []rune(middle)
		if len(runes) != 1 {
			return invalid[PersonalName](ReasonBadInitial, middle)
		}
		initial = maybe.Just(runes[0])
	}
	return result.Ok(PersonalName{first: first, middle: initial, last: last})
}

func (n PersonalName) First() string {
	return n.first
}

func (n PersonalName) Last() string {
	return n.last
}

// MiddleInitial returns the middle initial, which may be absent.
func (n PersonalName) MiddleInitial() maybe.Maybe[rune] {
	return n.middle
}

// String formats the name as "First M. Last" or "First Last".
func (n PersonalName) String() string {
	var initial rune
	switch m := n.middle.Match(); m {
	case m.Just(&initial):
		return fmt.Sprintf("%s %c. %s", n.first, initial, n.last)
	case m.Nothing():
	}
	return fmt.Sprintf("%s %s", n.first, n.last)
}
