package models

// AccountStatus enumerates the states of a dashboard user account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusInactive  AccountStatus = "inactive"
	AccountStatusSuspended AccountStatus = "suspended"
)

// UserAccount represents a person with access to the dashboard.
type UserAccount struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Role       UserRole      `json:"role"`
	Department string        `json:"department"`
	LastLogin  string        `json:"last_login,omitempty"`
	Status     AccountStatus `json:"status"`
}
