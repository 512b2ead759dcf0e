package listview

// Workflow is an explicit status transition table for one record domain.
type Workflow[S ~string] struct {
	states []S
	edges  map[S][]S
}

// NewWorkflow builds a workflow from the ordered status set and its outgoing edges.
// Edges naming statuses outside the set are ignored.
func NewWorkflow[S ~string](states []S, edges map[S][]S) *Workflow[S] {
	w := &Workflow[S]{
		states: append([]S(nil), states...),
		edges:  make(map[S][]S, len(edges)),
	}
	for from, targets := range edges {
		if !w.Valid(from) {
			continue
		}
		allowed := make([]S, 0, len(targets))
		for _, to := range targets {
			if w.Valid(to) && to != from {
				allowed = append(allowed, to)
			}
		}
		w.edges[from] = allowed
	}
	return w
}

// CompleteWorkflow allows moving between any two distinct statuses.
func CompleteWorkflow[S ~string](states ...S) *Workflow[S] {
	edges := make(map[S][]S, len(states))
	for _, from := range states {
		for _, to := range states {
			if from != to {
				edges[from] = append(edges[from], to)
			}
		}
	}
	return NewWorkflow(states, edges)
}

// States returns the status set in declaration order.
func (w *Workflow[S]) States() []S {
	return append([]S(nil), w.states...)
}

// Valid reports whether status belongs to the status set.
func (w *Workflow[S]) Valid(status S) bool {
	for _, s := range w.states {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition reports whether the table has an edge from -> to.
func (w *Workflow[S]) CanTransition(from, to S) bool {
	for _, s := range w.edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Allowed lists the statuses reachable in one step from the given status.
func (w *Workflow[S]) Allowed(from S) []S {
	out := make([]S, 0, len(w.edges[from]))
	return append(out, w.edges[from]...)
}

// Terminal reports whether no transition leaves the given status.
func (w *Workflow[S]) Terminal(status S) bool {
	return len(w.edges[status]) == 0
}

// Table exposes the transition table keyed by plain strings, for descriptors.
func (w *Workflow[S]) Table() map[string][]string {
	table := make(map[string][]string, len(w.states))
	for _, from := range w.states {
		targets := make([]string, 0, len(w.edges[from]))
		for _, to := range w.edges[from] {
			targets = append(targets, string(to))
		}
		table[string(from)] = targets
	}
	return table
}
