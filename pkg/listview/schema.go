package listview

// All is the filter sentinel meaning "no constraint" for a categorical field.
const All = "all"

// Record is the projection every listable model is adapted to.
type Record[S ~string] struct {
	ID         string
	Status     S
	Searchable []string
	Categories map[string]string
}

// Schema describes how a model type T is projected, filtered and transitioned.
type Schema[T any, S ~string] struct {
	// Project maps a model onto the generic record shape.
	Project func(T) Record[S]
	// WithStatus returns a copy of the model carrying the new status and nothing else changed.
	WithStatus func(T, S) T
	// Fields lists the categorical fields accepted by SetFilter.
	Fields []string
	// Workflow is the domain transition table. Nil accepts any transition.
	Workflow *Workflow[S]
}

// HasField reports whether field is a declared categorical field.
func (s Schema[T, S]) HasField(field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Transition validates the move from the record's current status to next and
// returns the record with its status replaced.
func (s Schema[T, S]) Transition(record T, next S) (T, error) {
	current := s.Project(record)
	if s.Workflow != nil {
		if !s.Workflow.Valid(next) {
			return record, &InvalidStatusError{Status: string(next)}
		}
		if current.Status != next && !s.Workflow.CanTransition(current.Status, next) {
			return record, &InvalidTransitionError{ID: current.ID, From: string(current.Status), To: string(next)}
		}
	}
	if current.Status == next {
		return record, nil
	}
	return s.WithStatus(record, next), nil
}

// Actions returns the statuses the record may move to from its current status.
func (s Schema[T, S]) Actions(record T) []S {
	if s.Workflow == nil {
		return nil
	}
	return s.Workflow.Allowed(s.Project(record).Status)
}
