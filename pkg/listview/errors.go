package listview

import "fmt"

// InvalidFieldError is returned when filtering on an undeclared field.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("listview: unknown filter field %q", e.Field)
}

// NotFoundError is returned when a record id is not part of the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("listview: record %q not found", e.ID)
}

// InvalidStatusError is returned when a status is outside the domain's status set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("listview: unknown status %q", e.Status)
}

// InvalidTransitionError is returned when the transition table has no edge From -> To.
type InvalidTransitionError struct {
	ID   string
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("listview: record %q cannot move from %q to %q", e.ID, e.From, e.To)
}
