package models

// ExpenseStatus enumerates the reimbursement workflow of an expense claim.
type ExpenseStatus string

const (
	ExpenseStatusDraft      ExpenseStatus = "draft"
	ExpenseStatusSubmitted  ExpenseStatus = "submitted"
	ExpenseStatusApproved   ExpenseStatus = "approved"
	ExpenseStatusRejected   ExpenseStatus = "rejected"
	ExpenseStatusReimbursed ExpenseStatus = "reimbursed"
)

// ExpenseClaim represents an expense submitted for reimbursement.
type ExpenseClaim struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Employee string        `json:"employee"`
	Category string        `json:"category"`
	Amount   float64       `json:"amount"`
	Date     string        `json:"date"`
	Status   ExpenseStatus `json:"status"`
}
