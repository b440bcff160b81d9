package validation

import "fmt"

// Error carries the violations of a rejected form. Order lists the fields
// in rule order so First reports the rule a user would hit first.
type Error struct {
	Violations Violations
	Order      []string
}

// NewError returns nil when v is empty.
func NewError(v Violations, order ...string) *Error {
	if v.Empty() {
		return nil
	}
	return &Error{Violations: v, Order: order}
}

// First returns the first violated field and its code.
func (e *Error) First() (field, code string) {
	for _, f := range e.Order {
		if c, ok := e.Violations[f]; ok {
			return f, c
		}
	}
	// fields outside Order: pick the lexically smallest for a stable answer
	for f, c := range e.Violations {
		if field == "" || f < field {
			field, code = f, c
		}
	}
	return field, code
}

func (e *Error) Error() string {
	f, c := e.First()
	return fmt.Sprintf("validation failed: %s %s", f, c)
}
