package dto

import "github.com/noah-isme/sma-dashboard-api/internal/models"

// ListQuery captures GET /resources/:resource query parameters.
type ListQuery struct {
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Page    int               `json:"page"`
}

// ListItem pairs a record with the statuses it may move to next.
type ListItem struct {
	Record  any      `json:"record"`
	Actions []string `json:"actions"`
}

// ListPage is the visible page of a resource list.
type ListPage struct {
	Items      []ListItem        `json:"items"`
	Pagination models.Pagination `json:"pagination"`
	Query      ListQuery         `json:"query"`
}

// ResourceDescriptor documents how a resource can be searched, filtered and transitioned.
type ResourceDescriptor struct {
	Slug        string              `json:"slug"`
	Title       string              `json:"title"`
	PageSize    int                 `json:"page_size"`
	Searchable  []string            `json:"searchable"`
	Fields      []string            `json:"fields"`
	Statuses    []string            `json:"statuses"`
	Transitions map[string][]string `json:"transitions"`
}

// TransitionRequest is the PATCH /resources/:resource/:id/status payload.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}

// Actor identifies who performed a mutation.
type Actor struct {
	ID   string
	Role string
}
