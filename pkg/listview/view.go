package listview

import "strings"

// DefaultPageSize is used when a view is built with a non-positive page size.
const DefaultPageSize = 10

// Query is the transient view state rebuilt on every interaction.
type Query struct {
	Search  string
	Filters map[string]string
	Page    int
}

// Page is the visible slice of the filtered collection plus pagination metadata.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalCount  int
	PageSize    int
}

// View is a searchable, filterable, paginated view over one record collection.
// A View is owned by a single caller and is not safe for concurrent use.
type View[T any, S ~string] struct {
	schema   Schema[T, S]
	pageSize int

	records   []T
	projected []Record[S]
	lowered   [][]string
	index     map[string]int

	search  string
	filters map[string]string
	page    int
}

// New builds a view over records. The slice order is the display order.
func New[T any, S ~string](records []T, schema Schema[T, S], pageSize int) *View[T, S] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	v := &View[T, S]{
		schema:   schema,
		pageSize: pageSize,
		filters:  make(map[string]string),
		page:     1,
	}
	v.SetRecords(records)
	return v
}

// SetRecords replaces the collection snapshot. The query is kept; the page is
// clamped against the new snapshot on the next read.
func (v *View[T, S]) SetRecords(records []T) {
	v.records = append([]T(nil), records...)
	v.projected = make([]Record[S], len(v.records))
	v.lowered = make([][]string, len(v.records))
	v.index = make(map[string]int, len(v.records))
	for i, record := range v.records {
		projection := v.schema.Project(record)
		v.projected[i] = projection
		folded := make([]string, len(projection.Searchable))
		for j, text := range projection.Searchable {
			folded[j] = strings.ToLower(text)
		}
		v.lowered[i] = folded
		if _, exists := v.index[projection.ID]; !exists {
			v.index[projection.ID] = i
		}
	}
}

// PageSize returns the fixed page size of the view.
func (v *View[T, S]) PageSize() int {
	return v.pageSize
}

// Query returns a copy of the current query state with the page clamped.
func (v *View[T, S]) Query() Query {
	filters := make(map[string]string, len(v.filters))
	for k, val := range v.filters {
		filters[k] = val
	}
	return Query{Search: v.search, Filters: filters, Page: v.clamp(v.page, v.totalPages(len(v.matches())))}
}

// SetSearchTerm updates the search term and resets the page to 1.
func (v *View[T, S]) SetSearchTerm(term string) {
	v.search = term
	v.page = 1
}

// SetFilter constrains a declared categorical field to value. All or an empty
// value removes the constraint. The page is reset to 1.
func (v *View[T, S]) SetFilter(field, value string) error {
	if !v.schema.HasField(field) {
		return &InvalidFieldError{Field: field}
	}
	if value == "" || value == All {
		delete(v.filters, field)
	} else {
		v.filters[field] = value
	}
	v.page = 1
	return nil
}

// GoToPage moves to page n clamped into [1, TotalPages].
func (v *View[T, S]) GoToPage(n int) {
	v.page = v.clamp(n, v.totalPages(len(v.matches())))
}

// Apply sets search, filters and page in that order. When a filter field is
// not declared the view is left untouched and the error is returned.
func (v *View[T, S]) Apply(q Query) error {
	for field := range q.Filters {
		if !v.schema.HasField(field) {
			return &InvalidFieldError{Field: field}
		}
	}
	v.SetSearchTerm(q.Search)
	v.filters = make(map[string]string, len(q.Filters))
	for field, value := range q.Filters {
		if err := v.SetFilter(field, value); err != nil {
			return err
		}
	}
	v.GoToPage(q.Page)
	return nil
}

// VisiblePage computes the current page. Calling it repeatedly without
// changing the view yields identical results.
func (v *View[T, S]) VisiblePage() Page[T] {
	matches := v.matches()
	total := v.totalPages(len(matches))
	current := v.clamp(v.page, total)

	start := (current - 1) * v.pageSize
	end := start + v.pageSize
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}
	items := make([]T, 0, end-start)
	for _, idx := range matches[start:end] {
		items = append(items, v.records[idx])
	}
	return Page[T]{
		Items:       items,
		CurrentPage: current,
		TotalPages:  total,
		TotalCount:  len(matches),
		PageSize:    v.pageSize,
	}
}

// Matches returns every record satisfying the query, in collection order.
func (v *View[T, S]) Matches() []T {
	matches := v.matches()
	out := make([]T, 0, len(matches))
	for _, idx := range matches {
		out = append(out, v.records[idx])
	}
	return out
}

// Get returns the record with the given id.
func (v *View[T, S]) Get(id string) (T, error) {
	idx, ok := v.index[id]
	if !ok {
		var zero T
		return zero, &NotFoundError{ID: id}
	}
	return v.records[idx], nil
}

// Transition returns the record with its status replaced by next. The view's
// own collection is not modified; callers persist the result and supply a
// fresh snapshot through SetRecords.
func (v *View[T, S]) Transition(id string, next S) (T, error) {
	record, err := v.Get(id)
	if err != nil {
		return record, err
	}
	return v.schema.Transition(record, next)
}

// Actions lists the statuses the record may move to.
func (v *View[T, S]) Actions(id string) ([]S, error) {
	record, err := v.Get(id)
	if err != nil {
		return nil, err
	}
	return v.schema.Actions(record), nil
}

func (v *View[T, S]) matches() []int {
	term := strings.ToLower(v.search)
	out := make([]int, 0, len(v.records))
	for i := range v.records {
		if term != "" && !containsAny(v.lowered[i], term) {
			continue
		}
		if !v.satisfiesFilters(v.projected[i]) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (v *View[T, S]) satisfiesFilters(record Record[S]) bool {
	for field, want := range v.filters {
		if record.Categories[field] != want {
			return false
		}
	}
	return true
}

func (v *View[T, S]) totalPages(count int) int {
	pages := (count + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (v *View[T, S]) clamp(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

func containsAny(fields []string, term string) bool {
	for _, field := range fields {
		if strings.Contains(field, term) {
			return true
		}
	}
	return false
}
